package metrics

const Namespace = "lumapix"
