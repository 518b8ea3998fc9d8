package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/gold-reports-api/internal/app"
	"github.com/vfg2006/gold-reports-api/internal/config"
	"github.com/vfg2006/gold-reports-api/internal/domain"
	"github.com/vfg2006/gold-reports-api/internal/export"
	"github.com/vfg2006/gold-reports-api/pkg/log"
	"github.com/vfg2006/gold-reports-api/pkg/utils"
)

// reportFlags são as opções comuns aos comandos de relatório
type reportFlags struct {
	asOf     string
	segment  string
	category string
	ageGroup string
	format   string
	key      int64
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reportctl",
		Short: "reportctl gera os relatórios de produtos e clientes da camada Gold",
		Long: `reportctl lê fact_sales, dim_products e dim_customers e imprime os
relatórios report_products e report_customers, ou a contagem por segmento.

A conexão segue as mesmas variáveis de ambiente da API (DATABASE_DRIVER,
DATABASE_URL, DATABASE_DSN, REPORTS_*_TABLE).`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("database-driver", "", "driver do banco: postgres, sqlserver ou sqlite")
	flags.String("database-url", "", "host/banco ou caminho do arquivo sqlite")
	flags.String("database-dsn", "", "DSN completa, substitui driver e url")
	flags.String("log-level", "warn", "nível de log")

	rootCmd.AddCommand(
		newProductsCmd(),
		newCustomersCmd(),
		newSummaryCmd(),
		newTokenCmd(),
	)

	return rootCmd
}

// loadConfig liga as flags globais ao viper antes de ler a configuração
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	bindings := map[string]string{
		"DATABASE_DRIVER": "database-driver",
		"DATABASE_URL":    "database-url",
		"DATABASE_DSN":    "database-dsn",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a flag --%s", name)
		}
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração")
	}

	level, _ := cmd.Flags().GetString("log-level")
	log.Configure(level)

	return cfg, nil
}

func openReporting(cmd *cobra.Command) (*app.Reporting, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	reports, err := app.NewReporting(commandContext(cmd), cfg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a camada Gold")
	}

	return reports, nil
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.asOf, "as-of", "", "data de referência YYYY-MM-DD (padrão: hoje)")
	cmd.Flags().StringVar(&f.segment, "segment", "", "filtra pelo segmento")
	cmd.Flags().StringVar(&f.format, "format", string(export.FormatTable), "formato de saída: json, csv ou table")
}

func (f *reportFlags) filters() (domain.ReportFilters, export.Format, error) {
	asOf, err := utils.ParseOptionalDate(f.asOf)
	if err != nil {
		return domain.ReportFilters{}, "", errors.Wrapf(err, "--as-of inválido %q", f.asOf)
	}

	format, err := export.ParseFormat(f.format)
	if err != nil {
		return domain.ReportFilters{}, "", errors.Wrap(err, "--format")
	}

	return domain.ReportFilters{
		AsOf:     asOf,
		Segment:  f.segment,
		Category: f.category,
		AgeGroup: f.ageGroup,
	}, format, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
