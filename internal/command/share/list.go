package share

import (
	"encoding/json"
	"os"

	"github.com/lumapix/lumapix/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagPage  = "page"
	flagLimit = "limit"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List your share grants",
		Flags: common.WithCommonFlags(
			&cli.IntFlag{
				Name:  flagPage,
				Value: 0,
				Usage: "Page to retrieve",
			},
			&cli.IntFlag{
				Name:  flagLimit,
				Value: 10,
				Usage: "Maximum number of share grants to retrieve",
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			lumapixClient, err := common.GetLumapixClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := lumapixClient.ListShares(ctx, cCtx.Int(flagPage), cCtx.Int(flagLimit))
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
