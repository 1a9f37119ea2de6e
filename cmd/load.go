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
	"os"
	"os/signal"

	"github.com/gnames/datablock/internal/ioload"
	"github.com/gnames/datablock/internal/iosources"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/sources"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

type loadFlags struct {
	manifest      string
	category      string
	skipUnchanged bool
	metricsFile   string
	jobs          int
	quiet         bool
}

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	var f loadFlags

	loadCmd := &cobra.Command{
		Use:   "load [inputs...]",
		Short: "Load Data Blocks JSON documents into the database",
		Long: `Load company documents into the database.

Each input is a JSON file, a directory (all *.json files inside,
recursively), a glob pattern or an S3 location (s3://bucket/key.json
or s3://bucket/prefix/). Inputs can also come from a manifest file.

Every document is stored in its own transaction. A document replaces
the earlier data of the same company for every section it contains.
Broken documents are reported and skipped, the rest of the batch is
loaded.

Examples:
  datablock load acme.json
  datablock load data/companyinfo/ --category companyinfo
  datablock load 'data/*.json' --skip-unchanged
  datablock load --manifest ~/.config/datablock/manifest.yaml
  datablock load s3://datablocks/2025/ --metrics-file load.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, args, f)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().StringVarP(&f.manifest, "manifest", "m", "",
		"YAML manifest with documents to load")
	loadCmd.Flags().StringVarP(&f.category, "category", "c", "",
		"category of documents that do not reveal their own\n"+
			"(companyinfo, eventsfilings, financials)")
	loadCmd.Flags().BoolVarP(&f.skipUnchanged, "skip-unchanged", "s", false,
		"skip documents identical to the last loaded ones")
	loadCmd.Flags().StringVar(&f.metricsFile, "metrics-file", "",
		"write load counters in Prometheus text format to the file")
	loadCmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0,
		"number of workers reading and decoding documents")
	loadCmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false,
		"do not show progress bar")

	return loadCmd
}

// loadOptions converts explicitly set flags to config options.
func loadOptions(cmd *cobra.Command, f loadFlags) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("category") {
		res = append(res, config.OptLoadCategory(f.category))
	}
	if flags.Changed("skip-unchanged") {
		res = append(res, config.OptLoadSkipUnchanged(f.skipUnchanged))
	}
	if flags.Changed("metrics-file") {
		res = append(res, config.OptLoadMetricsFile(f.metricsFile))
	}
	if flags.Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	res = append(res, config.OptWithProgress(!f.quiet))
	return res
}

// loadInputs combines command line arguments with manifest entries.
func loadInputs(args []string, manifest string) ([]sources.Input, error) {
	res := sources.NewInputs(args, "")
	if manifest != "" {
		m, err := iosources.NewManifest().Load(manifest)
		if err != nil {
			return nil, err
		}
		res = append(res, m.Inputs()...)
	}
	if len(res) == 0 {
		return nil, iosources.NoInputError(args)
	}
	return res, nil
}

func runLoad(cmd *cobra.Command, args []string, f loadFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.Update(loadOptions(cmd, f))

	inputs, err := loadInputs(args, f.manifest)
	if err != nil {
		return err
	}

	op, err := connectWithSchema(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	l := ioload.New(cfg, op.GORM(), iosources.NewReader(cfg))
	report, err := l.Load(ctx, inputs)
	if err != nil {
		return err
	}

	if report.Failed > 0 {
		gn.Warn("Finished with <em>%d</em> failed document(s), see the log",
			report.Failed)
	}
	return nil
}
