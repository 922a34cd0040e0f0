package share

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lumapix/lumapix/internal/command/common"
	"github.com/lumapix/lumapix/internal/http/handler/api"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagItem      = "item"
	flagPublic    = "public"
	flagRecipient = "recipient"
	flagExpires   = "expires"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create share grants for one or more content items",
		Flags: common.WithCommonFlags(
			&cli.StringSliceFlag{
				Name:     flagItem,
				Aliases:  []string{"i"},
				Usage:    "Content item to share, as '<kind>:<id>' (kind: 'photo', 'album', 'tag' or 'category')",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  flagPublic,
				Usage: "Make the share links accessible to anyone",
			},
			&cli.StringFlag{
				Name:    flagRecipient,
				Aliases: []string{"r"},
				Usage:   "Email address of the recipient",
			},
			&cli.TimestampFlag{
				Name:   flagExpires,
				Usage:  "Expiration date of the share links",
				Layout: time.RFC3339,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			lumapixClient, err := common.GetLumapixClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			req := api.CreateSharesRequest{
				Items:          make([]api.ContentItem, 0),
				Public:         cCtx.Bool(flagPublic),
				RecipientEmail: cCtx.String(flagRecipient),
				ExpiresAt:      cCtx.Timestamp(flagExpires),
			}

			for _, raw := range cCtx.StringSlice(flagItem) {
				kind, id, ok := strings.Cut(raw, ":")
				if !ok {
					return errors.Errorf("invalid item '%s': expected '<kind>:<id>'", raw)
				}

				req.Items = append(req.Items, api.ContentItem{
					Type: kind,
					ID:   id,
				})
			}

			res, err := lumapixClient.CreateShares(ctx, req)
			if err != nil {
				return errors.WithStack(err)
			}

			if res.Warning != nil {
				fmt.Fprintf(os.Stderr, "warning: %s\n", res.Warning.Message)
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
