package ioload_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/datablock/internal/ioload"
	"github.com/gnames/datablock/internal/iosources"
	"github.com/gnames/datablock/internal/iotesting"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/gnames/datablock/pkg/sources"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type env struct {
	db  *gorm.DB
	cfg *config.Config
	dir string
}

func newEnv(t *testing.T, opts ...config.Option) env {
	t.Helper()
	cfg := config.New()
	cfg.Update(append([]config.Option{config.OptJobsNumber(2)}, opts...))
	return env{db: iotesting.NewDB(t), cfg: cfg, dir: t.TempDir()}
}

func (e env) file(t *testing.T, name string, doc map[string]any) string {
	t.Helper()
	return iotesting.WriteFile(t, e.dir, name, string(iotesting.JSON(t, doc)))
}

func (e env) load(t *testing.T, names ...string) (*lifecycle.Report, error) {
	t.Helper()
	l := ioload.New(e.cfg, e.db, iosources.NewReader(e.cfg))
	return l.Load(context.Background(), sources.NewInputs(names, ""))
}

func (e env) counts(t *testing.T) map[string]int64 {
	t.Helper()
	res := make(map[string]int64)
	for _, tbl := range schema.TableNames() {
		switch tbl {
		case "load_runs", "source_documents":
			continue
		}
		res[tbl] = count(t, e.db, tbl)
	}
	return res
}

func TestLoadIdempotent(t *testing.T) {
	tests := []struct {
		msg string
		doc map[string]any
	}{
		{"company info", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 3)},
		{"events filings", iotesting.EventsFilingsDoc(iotesting.AcmeDUNS, 2)},
		{"financials", iotesting.FinancialsDoc(iotesting.AcmeDUNS, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			e := newEnv(t)
			path := e.file(t, "doc.json", tt.doc)

			r, err := e.load(t, path)
			require.NoError(t, err)
			assert.Equal(t, 1, r.Succeeded)
			first := e.counts(t)

			r2, err := e.load(t, path)
			require.NoError(t, err)
			assert.Equal(t, r.Rows, r2.Rows)
			assert.Equal(t, first, e.counts(t))
			assert.Equal(t, int64(1), first["companies"])
		})
	}
}

func TestLoadAcme(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)

	path := e.file(t, "acme_companyinfo.json",
		iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 3))
	r, err := e.load(t, path)
	require.NoError(t, err)
	require.Len(t, r.Files, 1)

	fr := r.Files[0]
	assert.Equal(lifecycle.StatusLoaded, fr.Status)
	assert.Equal(iotesting.AcmeDUNS, fr.DUNS)
	assert.Equal("companyinfo", fr.Category)
	assert.Equal(14+3, fr.Rows)
	assert.Equal(int64(3), count(t, e.db, "industry_codes"))
	assert.Equal(int64(2), count(t, e.db, "trade_style_names"))

	path = e.file(t, "acme_companyinfo.json",
		iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Corporation", 2))
	_, err = e.load(t, path)
	require.NoError(t, err)

	assert.Equal(int64(1), count(t, e.db, "companies"))
	assert.Equal(int64(1), count(t, e.db, "company_info"))
	assert.Equal(int64(2), count(t, e.db, "industry_codes"))

	var c schema.Company
	require.NoError(t, e.db.Where("duns = ?", iotesting.AcmeDUNS).First(&c).Error)
	assert.Equal("Acme Corporation", *c.PrimaryName)
}

func TestLoadAcmeReplace(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)

	_, err := e.load(t, e.file(t, "acme_v1.json",
		iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1)))
	require.NoError(t, err)

	var old []schema.IndustryCode
	require.NoError(t, e.db.Find(&old).Error)
	require.Len(t, old, 1)

	_, err = e.load(t, e.file(t, "acme_v2.json",
		iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 2)))
	require.NoError(t, err)

	var companies []schema.Company
	require.NoError(t, e.db.Find(&companies).Error)
	require.Len(t, companies, 1)
	assert.Equal("Acme Co", *companies[0].PrimaryName)

	var codes []schema.IndustryCode
	require.NoError(t, e.db.Order("priority").Find(&codes).Error)
	require.Len(t, codes, 2)
	assert.Equal([]int{1, 2}, []int{codes[0].Priority, codes[1].Priority})
	for _, c := range codes {
		assert.NotEqual(old[0].ID, c.ID)
	}

	var names []schema.TradeStyleName
	require.NoError(t, e.db.Order("priority").Find(&names).Error)
	require.Len(t, names, 2)
	assert.Equal([]int{1, 2}, []int{names[0].Priority, names[1].Priority})
}

func TestLoadMoney(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)
	_, err := e.load(t, e.file(t, "events.json",
		iotesting.EventsFilingsDoc(iotesting.AcmeDUNS, 1)))
	require.NoError(t, err)

	var lien schema.LegalEvent
	require.NoError(t, e.db.Where("kind = ?", schema.KindLien).First(&lien).Error)
	require.NotNil(t, lien.OpenAmount.Value)
	assert.InDelta(125000.5, *lien.OpenAmount.Value, 0.001)
	assert.Equal("USD", *lien.OpenAmount.Currency)

	var awards schema.AwardsSummary
	require.NoError(t, e.db.First(&awards).Error)
	assert.Nil(awards.TotalContractsAmount.Currency)
}

func TestLoadEmails(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)
	_, err := e.load(t, e.file(t, "info.json",
		iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1)))
	require.NoError(t, err)

	var emails []schema.EmailAddress
	require.NoError(t, e.db.Order("id").Find(&emails).Error)
	require.Len(t, emails, 2)
	assert.Equal("info@acme.example", emails[0].Email)
	assert.Equal("sales@acme.example", emails[1].Email)
}

func TestLoadPartialBatch(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)

	good1 := e.file(t, "1.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))
	bad := iotesting.WriteFile(t, e.dir, "2.json", `{"organization": {"duns": `)
	good2 := e.file(t, "3.json", iotesting.FinancialsDoc("804735132", 0))

	r, err := e.load(t, good1, bad, good2)
	require.NoError(t, err)
	assert.Equal(2, r.Succeeded)
	assert.Equal(1, r.Failed)
	require.Len(t, r.Files, 3)

	assert.Equal(good1, r.Files[0].Name)
	assert.Equal(lifecycle.StatusFailed, r.Files[1].Status)
	assert.Equal(errcode.DocumentDecodeError, r.Files[1].Err.(*gn.Error).Code)
	assert.Equal(lifecycle.StatusLoaded, r.Files[2].Status)
	assert.Equal(int64(2), count(t, e.db, "companies"))
	assert.Equal(int64(2), count(t, e.db, "source_documents"))

	var run schema.LoadRun
	require.NoError(t, e.db.First(&run, "id = ?", r.RunID).Error)
	assert.Equal(3, run.FilesTotal)
	assert.Equal(2, run.FilesSucceeded)
	assert.Equal(1, run.FilesFailed)
	assert.NotNil(run.FinishedAt)
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)

	a := e.file(t, "a.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))
	b := filepath.Join(e.dir, "b.json")
	c := e.file(t, "c.json", iotesting.CompanyInfoDoc("804735132", "Beta Co", 1))

	r, err := e.load(t, a, b, c)
	require.NoError(t, err)
	assert.Equal(2, r.Succeeded)
	assert.Equal(1, r.Failed)
	require.Len(t, r.Files, 3)

	assert.Equal(b, r.Files[1].Name)
	assert.Equal(lifecycle.StatusFailed, r.Files[1].Status)
	assert.Equal(errcode.ReadFileError, r.Files[1].Err.(*gn.Error).Code)
	assert.Equal(int64(2), count(t, e.db, "companies"))
}

func TestLoadFailures(t *testing.T) {
	e := newEnv(t)
	noDUNS := iotesting.CompanyInfoDoc("", "Acme Co", 1)
	badDUNS := iotesting.CompanyInfoDoc("12345", "Acme Co", 1)
	unknown := map[string]any{"organization": map[string]any{"duns": iotesting.AcmeDUNS}}

	tests := []struct {
		msg  string
		doc  map[string]any
		code gn.ErrorCode
	}{
		{"no duns", noDUNS, errcode.DocumentNoKeyError},
		{"bad duns", badDUNS, errcode.DocumentInvalidKeyError},
		{"unknown category", unknown, errcode.DocumentUnknownCategoryError},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			r, err := e.load(t, e.file(t, "doc.json", tt.doc))
			require.Error(t, err)
			assert.Equal(t, errcode.LoadAllFilesFailedError, err.(*gn.Error).Code)
			require.Len(t, r.Files, 1)
			assert.Equal(t, tt.code, r.Files[0].Err.(*gn.Error).Code)
		})
	}
	assert.Zero(t, count(t, e.db, "companies"))
}

func TestLoadCategoryHint(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)

	doc := iotesting.FinancialsDoc(iotesting.AcmeDUNS, 0)
	delete(doc, "inquiryDetail")
	// neither blockIDs nor the shape reveal the category
	org := doc["organization"].(map[string]any)
	org["financials"] = map[string]any{}
	delete(org, "latestFiscalFinancials")
	delete(org, "otherFinancials")

	r, err := e.load(t, e.file(t, "acme_companyfinancials.json", doc))
	require.NoError(t, err)
	assert.Equal("financials", r.Files[0].Category)

	l := ioload.New(e.cfg, e.db, iosources.NewReader(e.cfg))
	r, err = l.Load(context.Background(), []sources.Input{
		{Name: e.file(t, "acme.json", doc), Category: "financials"},
	})
	require.NoError(t, err)
	assert.Equal(1, r.Succeeded)
}

func TestLoadSectionAbsent(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)
	_, err := e.load(t, e.file(t, "events.json",
		iotesting.EventsFilingsDoc(iotesting.AcmeDUNS, 2)))
	require.NoError(t, err)
	contracts := count(t, e.db, "contracts")
	require.NotZero(t, contracts)

	doc := iotesting.EventsFilingsDoc(iotesting.AcmeDUNS, 1)
	org := doc["organization"].(map[string]any)
	delete(org, "awards")
	org["violations"] = map[string]any{}

	_, err = e.load(t, e.file(t, "events.json", doc))
	require.NoError(t, err)
	assert.Equal(contracts, count(t, e.db, "contracts"))
	assert.Equal(int64(1), count(t, e.db, "awards_summaries"))
	assert.Zero(count(t, e.db, "violations"))
	assert.Zero(count(t, e.db, "violations_summaries"))
}

func TestLoadSkipUnchanged(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t, config.OptLoadSkipUnchanged(true))
	path := e.file(t, "info.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 2))

	_, err := e.load(t, path)
	require.NoError(t, err)
	r, err := e.load(t, path)
	require.NoError(t, err)
	assert.Equal(1, r.Skipped)
	assert.Equal(lifecycle.StatusSkipped, r.Files[0].Status)
	assert.Equal(int64(1), count(t, e.db, "source_documents"))

	path = e.file(t, "info.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))
	r, err = e.load(t, path)
	require.NoError(t, err)
	assert.Equal(1, r.Succeeded)
	assert.Equal(int64(1), count(t, e.db, "industry_codes"))
}

func TestLoadMetricsFile(t *testing.T) {
	assert := assert.New(t)
	metrics := filepath.Join(t.TempDir(), "datablock.prom")
	e := newEnv(t, config.OptLoadMetricsFile(metrics))

	good := e.file(t, "a.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))
	bad := iotesting.WriteFile(t, e.dir, "b.json", "[]")
	_, err := e.load(t, good, bad)
	require.NoError(t, err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	txt := string(data)
	assert.Contains(txt, `datablock_load_documents_total{status="loaded"} 1`)
	assert.Contains(txt, `datablock_load_documents_total{status="failed"} 1`)
	assert.Contains(txt, `datablock_load_rows_inserted_total{group="company_info"} 15`)
	assert.Contains(txt, "datablock_load_last_run_duration_seconds")
}

func TestLoadDirectory(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)
	e.file(t, "b_events.json", iotesting.EventsFilingsDoc(iotesting.AcmeDUNS, 1))
	e.file(t, "a_info.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))
	e.file(t, "c_fin.json", iotesting.FinancialsDoc(iotesting.AcmeDUNS, 1))

	r, err := e.load(t, e.dir)
	require.NoError(t, err)
	assert.Equal(3, r.Succeeded)
	assert.Equal([]string{"companyinfo", "eventsfilings", "financials"},
		[]string{r.Files[0].Category, r.Files[1].Category, r.Files[2].Category})
	assert.Equal(int64(1), count(t, e.db, "companies"))
}

func TestLoadCancelled(t *testing.T) {
	e := newEnv(t)
	path := e.file(t, "a.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := ioload.New(e.cfg, e.db, iosources.NewReader(e.cfg))
	_, err := l.Load(ctx, sources.NewInputs([]string{path}, ""))
	require.Error(t, err)
}

// cancelHandler cancels a context when a record with the given message
// is logged.
type cancelHandler struct {
	slog.Handler
	msg    string
	cancel context.CancelFunc
}

func (h cancelHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h cancelHandler) Handle(_ context.Context, r slog.Record) error {
	if r.Message == h.msg {
		h.cancel()
	}
	return nil
}

func TestLoadCancelledAfterCommit(t *testing.T) {
	assert := assert.New(t)
	e := newEnv(t)
	a := e.file(t, "a.json", iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 1))
	b := e.file(t, "b.json", iotesting.CompanyInfoDoc("804735132", "Beta Co", 1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	old := slog.Default()
	slog.SetDefault(slog.New(cancelHandler{
		Handler: slog.DiscardHandler,
		msg:     "Document loaded",
		cancel:  cancel,
	}))
	t.Cleanup(func() { slog.SetDefault(old) })

	l := ioload.New(e.cfg, e.db, iosources.NewReader(e.cfg))
	r, err := l.Load(ctx, sources.NewInputs([]string{a, b}, ""))
	require.Error(t, err)
	assert.Equal(errcode.LoadCancelledError, err.(*gn.Error).Code)

	require.NotNil(t, r)
	require.Len(t, r.Files, 1)
	assert.Equal(a, r.Files[0].Name)
	assert.Equal(lifecycle.StatusLoaded, r.Files[0].Status)
	assert.Equal(1, r.Succeeded)
	assert.Equal(int64(1), count(t, e.db, "companies"))

	var run schema.LoadRun
	require.NoError(t, e.db.First(&run, "id = ?", r.RunID).Error)
	assert.Equal(1, run.FilesSucceeded)
}
