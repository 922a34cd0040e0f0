package share

import (
	"encoding/json"
	"os"

	"github.com/lumapix/lumapix/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve a share token into its content",
		ArgsUsage: "<token>",
		Flags:     common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			token := cCtx.Args().First()
			if token == "" {
				return errors.New("missing token argument")
			}

			lumapixClient, err := common.GetLumapixClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := lumapixClient.ResolveShare(ctx, token)
			if err != nil {
				return errors.WithStack(err)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			if err := encoder.Encode(res); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
