package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/gold-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/gold-reports-api/pkg/middleware"
)

func newTokenCmd() *cobra.Command {
	var (
		userName string
		admin    bool
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Gera um bearer token assinado com AUTH_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			authenticator := authenticating.NewService(cfg.Auth)
			if !authenticator.Enabled() {
				return authenticating.ErrAuthDisabled
			}

			role := middleware.RoleAnalyst
			if admin {
				role = middleware.RoleAdmin
			}

			token, err := authenticator.GenerateToken(userName, role, ttl)
			if err != nil {
				return errors.Wrap(err, "erro ao gerar token")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userName, "user", "reportctl", "nome gravado no token")
	cmd.Flags().BoolVar(&admin, "admin", false, "gera token com role de administrador")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")

	return cmd
}
