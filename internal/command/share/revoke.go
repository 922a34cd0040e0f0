package share

import (
	"github.com/lumapix/lumapix/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func revokeCommand() *cli.Command {
	return &cli.Command{
		Name:      "revoke",
		Usage:     "Revoke a share grant",
		ArgsUsage: "<share_id>",
		Flags:     common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			shareID := cCtx.Args().First()
			if shareID == "" {
				return errors.New("missing share id argument")
			}

			lumapixClient, err := common.GetLumapixClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := lumapixClient.DeleteShare(ctx, shareID); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
