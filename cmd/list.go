/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/datablock/internal/ioquery"
	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

type listFlags struct {
	country string
	name    string
	group   string
	limit   int
	offset  int
	full    bool
}

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	var f listFlags

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List loaded companies",
		Long: `List loaded companies ordered by DUNS as JSON.

Detail groups: company_info, legal_events, awards, exclusions,
significant_events, financing_events, violations, financials.

Examples:
  datablock list --country US
  datablock list --name acme --limit 10
  datablock list --group financials --offset 50 --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runList(cmd, f)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	listCmd.Flags().StringVar(&f.country, "country", "",
		"ISO alpha-2 country code")
	listCmd.Flags().StringVarP(&f.name, "name", "n", "",
		"part of the primary name, case-insensitive")
	listCmd.Flags().StringVarP(&f.group, "group", "g", "",
		"keep companies that have rows of the detail group")
	listCmd.Flags().IntVarP(&f.limit, "limit", "l", lifecycle.DefaultLimit,
		"maximum number of companies")
	listCmd.Flags().IntVarP(&f.offset, "offset", "o", 0,
		"number of companies to skip")
	listCmd.Flags().BoolVar(&f.full, "full", false,
		"include every detail group")

	return listCmd
}

// listFilter converts flags to a query filter.
func listFilter(f listFlags) (lifecycle.Filter, error) {
	res := lifecycle.Filter{
		Country: f.country,
		Name:    f.name,
		Limit:   f.limit,
		Offset:  f.offset,
		Full:    f.full,
	}
	if f.group != "" {
		g, err := ioquery.ParseGroup(f.group)
		if err != nil {
			return res, err
		}
		res.Group = g
	}
	return res, nil
}

func runList(cmd *cobra.Command, f listFlags) error {
	ctx := context.Background()

	filter, err := listFilter(f)
	if err != nil {
		return err
	}

	op, err := connectWithSchema(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	res, err := ioquery.New(op.GORM()).ListCompanies(ctx, filter)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}
