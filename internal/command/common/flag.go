package common

import (
	"net/url"

	"github.com/lumapix/lumapix/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramServer   = "server"
	paramUsername = "username"
	paramPassword = "password"
)

var (
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3003",
		EnvVars: []string{"LUMAPIX_CLI_SERVER"},
		Usage:   "Lumapix server base url",
	}
	flagUsername = &cli.StringFlag{
		Name:    paramUsername,
		Aliases: []string{"u"},
		EnvVars: []string{"LUMAPIX_CLI_USERNAME"},
		Usage:   "Email address used to authenticate",
	}
	flagPassword = &cli.StringFlag{
		Name:    paramPassword,
		Aliases: []string{"p"},
		EnvVars: []string{"LUMAPIX_CLI_PASSWORD"},
		Usage:   "Password used to authenticate",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagUsername,
		flagPassword,
	}, flags...)
}

func GetLumapixClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := []client.OptionFunc{
		client.WithBaseURL(serverURL),
	}

	if username := ctx.String(paramUsername); username != "" {
		opts = append(opts, client.WithCredentials(username, ctx.String(paramPassword)))
	}

	return client.New(opts...), nil
}
