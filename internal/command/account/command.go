package account

import (
	"encoding/json"
	"os"

	"github.com/lumapix/lumapix/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUsername = "username"
	flagEmail    = "email"
	flagPassword = "password"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage user accounts",
		Subcommands: []*cli.Command{
			registerCommand(),
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user account",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagUsername,
				Usage:    "Username of the new account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagEmail,
				Usage:    "Email address of the new account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagPassword,
				Usage:    "Password of the new account",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			lumapixClient, err := common.GetLumapixClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := lumapixClient.Register(ctx, cCtx.String(flagUsername), cCtx.String(flagEmail), cCtx.String(flagPassword))
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
