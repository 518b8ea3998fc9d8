package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/gold-reports-api/internal/export"
)

func newProductsCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Imprime o relatório report_products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, format, err := flags.filters()
			if err != nil {
				return err
			}

			reports, err := openReporting(cmd)
			if err != nil {
				return err
			}
			defer reports.Close()

			ctx := commandContext(cmd)
			if flags.key != 0 {
				row, err := reports.Reporter.GetProductReportByKey(ctx, flags.key, filters)
				if err != nil {
					return errors.Wrapf(err, "produto %d", flags.key)
				}
				return export.Write(cmd.OutOrStdout(), format, row)
			}

			rows, err := reports.Reporter.GetProductReport(ctx, filters)
			if err != nil {
				return errors.Wrap(err, "erro ao gerar report_products")
			}
			return export.Write(cmd.OutOrStdout(), format, rows)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.category, "category", "", "filtra pela categoria")
	cmd.Flags().Int64Var(&flags.key, "key", 0, "imprime somente o product_key informado")

	return cmd
}

func newCustomersCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Imprime o relatório report_customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, format, err := flags.filters()
			if err != nil {
				return err
			}

			reports, err := openReporting(cmd)
			if err != nil {
				return err
			}
			defer reports.Close()

			ctx := commandContext(cmd)
			if flags.key != 0 {
				row, err := reports.Reporter.GetCustomerReportByKey(ctx, flags.key, filters)
				if err != nil {
					return errors.Wrapf(err, "cliente %d", flags.key)
				}
				return export.Write(cmd.OutOrStdout(), format, row)
			}

			rows, err := reports.Reporter.GetCustomerReport(ctx, filters)
			if err != nil {
				return errors.Wrap(err, "erro ao gerar report_customers")
			}
			return export.Write(cmd.OutOrStdout(), format, rows)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.ageGroup, "age-group", "", "filtra pela faixa etária")
	cmd.Flags().Int64Var(&flags.key, "key", 0, "imprime somente o customer_key informado")

	return cmd
}

func newSummaryCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Imprime a contagem de entidades por segmento",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, format, err := flags.filters()
			if err != nil {
				return err
			}

			reports, err := openReporting(cmd)
			if err != nil {
				return err
			}
			defer reports.Close()

			summary, err := reports.Reporter.GetSegmentSummary(commandContext(cmd), filters)
			if err != nil {
				return errors.Wrap(err, "erro ao gerar o resumo por segmento")
			}
			return export.Write(cmd.OutOrStdout(), format, summary)
		},
	}

	cmd.Flags().StringVar(&flags.asOf, "as-of", "", "data de referência YYYY-MM-DD (padrão: hoje)")
	cmd.Flags().StringVar(&flags.format, "format", string(export.FormatTable), "formato de saída: json, csv ou table")

	return cmd
}
