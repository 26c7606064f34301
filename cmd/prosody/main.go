package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/palemoky/prosody-scorer/internal/batch"
	"github.com/palemoky/prosody-scorer/internal/dataset"
	"github.com/palemoky/prosody-scorer/internal/prosody"
	"github.com/palemoky/prosody-scorer/internal/rhyme"
	"github.com/palemoky/prosody-scorer/internal/store"
)

var (
	detailedOutput string
	summaryOutput  string
	poemField      string
	instructField  string
	isJSONL        bool
	rhymeSystem    string
	workers        int
	cachePath      string

	keepFields     []string
	maxWuyanJueju  int
	maxQiyanJueju  int
	maxWuyanLvshi  int
	maxQiyanLvshi  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prosody",
		Short: "Classical Chinese poetry prosody scorer",
		Long:  "Validate and score classical Chinese poems against tonal, rhyme, and form rules.",
	}

	scoreCmd := &cobra.Command{
		Use:   "score <input>",
		Short: "Score one or more poems against their declared form",
		Args:  cobra.ExactArgs(1),
		RunE:  runScore,
	}
	addCommonFlags(scoreCmd)

	extractCmd := &cobra.Command{
		Use:   "extract <input>",
		Short: "Score a dataset, rank it, and extract the best poems per form",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	addCommonFlags(extractCmd)
	extractCmd.Flags().StringSliceVar(&keepFields, "keep-fields", nil, "passthrough fields to keep in the extracted dataset (default: all)")
	extractCmd.Flags().IntVar(&maxWuyanJueju, "max-wuyan-jueju", 0, "cap on extracted 五言绝句 poems (0 = unlimited)")
	extractCmd.Flags().IntVar(&maxQiyanJueju, "max-qiyan-jueju", 0, "cap on extracted 七言绝句 poems (0 = unlimited)")
	extractCmd.Flags().IntVar(&maxWuyanLvshi, "max-wuyan-lvshi", 0, "cap on extracted 五言律诗 poems (0 = unlimited)")
	extractCmd.Flags().IntVar(&maxQiyanLvshi, "max-qiyan-lvshi", 0, "cap on extracted 七言律诗 poems (0 = unlimited)")

	showCharCmd := &cobra.Command{
		Use:   "show-char <char>",
		Short: "Print a single character's rhyme classes in the pingshui, xin and tong books",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowChar,
	}

	rootCmd.AddCommand(scoreCmd, extractCmd, showCharCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&detailedOutput, "detailed-output", "", "file to write the full annotated report dataset to")
	cmd.Flags().StringVar(&summaryOutput, "summary-output", "", "file to write the per-batch statistics summary to")
	cmd.Flags().StringVar(&poemField, "poem-field", "content", "JSON field name holding the poem text")
	cmd.Flags().StringVar(&instructField, "instruct-field", "instruct", "JSON field name holding the declared form")
	cmd.Flags().BoolVar(&isJSONL, "is-jsonl", false, "treat input as line-delimited JSON (one record per line) instead of a single record")
	cmd.Flags().StringVar(&rhymeSystem, "rhyme-system", "pingshui", "rhyme book to score against: pingshui, xin, or tong")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent scoring workers (0 = number of CPUs)")
	cmd.Flags().StringVar(&cachePath, "cache", "", "score-result cache database path (empty disables caching)")
}

func runScore(cmd *cobra.Command, args []string) error {
	input := args[0]

	book, ok := rhyme.ParseBook(rhymeSystem)
	if !ok {
		return fmt.Errorf("--rhyme-system must be one of pingshui, xin, tong, got %q", rhymeSystem)
	}

	records, loadErrs, err := loadRecords(input, isJSONL, poemField, instructField)
	if err != nil {
		return err
	}
	for _, e := range loadErrs {
		log.Printf("warning: skipping malformed record: %v", &e)
	}
	log.Printf("Loaded %d record(s) from %s", len(records), input)

	var repo *store.Repository
	if cachePath != "" {
		repo, err = openCache(cachePath)
		if err != nil {
			return err
		}
	}

	scored, recordErrs := scoreAll(records, book, repo)
	for _, e := range recordErrs {
		log.Printf("warning: %v", &e)
	}

	if err := writeOutputs(scored, book); err != nil {
		return err
	}

	printSummary(scored, book)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]

	book, ok := rhyme.ParseBook(rhymeSystem)
	if !ok {
		return fmt.Errorf("--rhyme-system must be one of pingshui, xin, tong, got %q", rhymeSystem)
	}

	records, loadErrs, err := loadRecords(input, isJSONL, poemField, instructField)
	if err != nil {
		return err
	}
	for _, e := range loadErrs {
		log.Printf("warning: skipping malformed record: %v", &e)
	}
	log.Printf("Loaded %d record(s) from %s", len(records), input)

	var repo *store.Repository
	if cachePath != "" {
		repo, err = openCache(cachePath)
		if err != nil {
			return err
		}
	}

	scored, recordErrs := scoreAll(records, book, repo)
	for _, e := range recordErrs {
		log.Printf("warning: %v", &e)
	}

	if len(keepFields) > 0 {
		keep := make(map[string]bool, len(keepFields))
		for _, k := range keepFields {
			keep[k] = true
		}
		for i := range scored {
			for k := range scored[i].Passthrough {
				if !keep[k] {
					delete(scored[i].Passthrough, k)
				}
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MeanTotal() > scored[j].MeanTotal()
	})

	caps := map[prosody.Form]int{
		prosody.FiveQiJueju: maxWuyanJueju,
		prosody.SevenQiJueju: maxQiyanJueju,
		prosody.FiveLuLvshi: maxWuyanLvshi,
		prosody.SevenLuLvshi: maxQiyanLvshi,
	}
	kept, dropped := applyCaps(scored, caps)
	if dropped > 0 {
		log.Printf("Dropped %d poem(s) exceeding per-form caps", dropped)
	}

	if err := writeOutputs(kept, book); err != nil {
		return err
	}

	outPath := strings.TrimSuffix(input, ".jsonl") + ".extracted.jsonl"
	if err := dataset.WriteJSONL(outPath, kept); err != nil {
		return fmt.Errorf("failed to write extracted dataset: %w", err)
	}
	log.Printf("Wrote %d extracted poem(s) to %s", len(kept), outPath)

	printSummary(kept, book)
	return nil
}

func runShowChar(cmd *cobra.Command, args []string) error {
	chars := []rune(args[0])
	if len(chars) != 1 {
		return fmt.Errorf("show-char takes exactly one character, got %q", args[0])
	}
	char := chars[0]

	for _, book := range []rhyme.Book{rhyme.Pingshui, rhyme.Xin, rhyme.Tong} {
		classes := rhyme.Classes(char, book)
		tone := rhyme.CharTone(char, book)
		if len(classes) == 0 {
			fmt.Printf("%s：未能在韵书中查询到该汉字信息\n", book)
			continue
		}
		ids := make([]string, len(classes))
		for i, c := range classes {
			ids[i] = fmt.Sprintf("%d", c)
		}
		fmt.Printf("%s：韵部 %s，声调 %s\n", book, strings.Join(ids, "/"), tone)
	}
	return nil
}

// openCache opens (creating if needed) the score-result cache database.
func openCache(path string) (*store.Repository, error) {
	db, err := store.Open(path, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate cache %s: %w", path, err)
	}
	return store.NewRepository(db), nil
}

// scoreAll runs the worker-pool batch scorer, emitting progress to stderr.
func scoreAll(records []dataset.Record, book rhyme.Book, repo *store.Repository) ([]dataset.ScoredRecord, []batch.RecordError) {
	opts := batch.Options{
		Workers:      workers,
		Book:         book,
		Detailed:     detailedOutput != "",
		ShowProgress: len(records) > 1,
	}
	scored, errs := batch.Run(records, opts)

	if repo != nil {
		for _, s := range scored {
			rec := scoreRecordFor(s, rhymeSystem)
			if err := repo.Upsert(rec); err != nil {
				log.Printf("warning: failed to cache score for %q: %v", s.Title, err)
			}
		}
	}

	return scored, errs
}

func applyCaps(scored []dataset.ScoredRecord, caps map[prosody.Form]int) (kept []dataset.ScoredRecord, dropped int) {
	counts := make(map[prosody.Form]int)
	for _, s := range scored {
		form, ok := prosody.ParseDeclaredForm(s.Instruct)
		if !ok {
			kept = append(kept, s)
			continue
		}
		limit := caps[form]
		if limit <= 0 || counts[form] < limit {
			counts[form]++
			kept = append(kept, s)
		} else {
			dropped++
		}
	}
	return kept, dropped
}

func writeOutputs(scored []dataset.ScoredRecord, book rhyme.Book) error {
	if detailedOutput != "" {
		if err := dataset.WriteJSONL(detailedOutput, scored); err != nil {
			return fmt.Errorf("failed to write detailed output: %w", err)
		}
		log.Printf("Wrote detailed report for %d poem(s) to %s", len(scored), detailedOutput)
	}
	if summaryOutput != "" {
		if err := writeSummaryFile(summaryOutput, scored, book); err != nil {
			return fmt.Errorf("failed to write summary output: %w", err)
		}
		log.Printf("Wrote batch summary to %s", summaryOutput)
	}
	return nil
}

func writeSummaryFile(path string, scored []dataset.ScoredRecord, book rhyme.Book) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	summary := summarize(scored)
	summary.SelectedBook = book.String()
	enc := jsonEncoder(f)
	return enc.Encode(summary)
}

// batchSummary mirrors spec.md §6's per-batch summary shape.
type batchSummary struct {
	SampleCount  int     `json:"sample_count"`
	MeanForm     float64 `json:"mean_format_score"`
	MeanTone     float64 `json:"mean_pingze_score"`
	MeanRhyme    float64 `json:"mean_rhyme_score"`
	MeanTotal    float64 `json:"mean_total_score"`
	SelectedBook string  `json:"selected_book"`
	Weights      [3]float64 `json:"weights"`
}

func summarize(scored []dataset.ScoredRecord) batchSummary {
	s := batchSummary{SampleCount: len(scored), Weights: [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}}
	if len(scored) == 0 {
		return s
	}
	var formSum, toneSum, rhymeSum float64
	for _, r := range scored {
		formSum += r.FormatScore
		toneSum += r.PingzeScore
		rhymeSum += r.RhymeScore
	}
	n := float64(len(scored))
	s.MeanForm = formSum / n
	s.MeanTone = toneSum / n
	s.MeanRhyme = rhymeSum / n
	s.MeanTotal = (s.MeanForm + s.MeanTone + s.MeanRhyme) / 3
	return s
}

// jsonEncoder returns an encoder configured like the dataset package's
// writers: no HTML-escaping, since the payload is Chinese text.
func jsonEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// scoreRecordFor builds the cache row for one scored poem. The ID is a
// content hash rather than an autoincrement so re-running score/extract
// against the same dataset and rhyme book upserts instead of duplicating.
func scoreRecordFor(s dataset.ScoredRecord, rhymeSystem string) *store.ScoreRecord {
	h := sha256.Sum256([]byte(s.Content + "\x00" + s.Instruct + "\x00" + rhymeSystem))
	passthrough, _ := json.Marshal(s.Passthrough)
	return &store.ScoreRecord{
		ID:                 hex.EncodeToString(h[:]),
		Title:              s.Title,
		Content:            s.Content,
		Instruct:           s.Instruct,
		RhymeSystem:        rhymeSystem,
		FormScore:          s.FormatScore,
		ToneScore:          s.PingzeScore,
		RhymeScore:         s.RhymeScore,
		RhymeScorePingshui: s.RhymeScorePingshui,
		RhymeScoreXin:      s.RhymeScoreXin,
		RhymeScoreTong:     s.RhymeScoreTong,
		Report:             datatypes.JSON(s.Report),
		Passthrough:        datatypes.JSON(passthrough),
	}
}

func printSummary(scored []dataset.ScoredRecord, book rhyme.Book) {
	s := summarize(scored)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Metric", "Value"})
	_ = table.Bulk([][]string{
		{"Sample count", fmt.Sprintf("%d", s.SampleCount)},
		{"Rhyme book", book.String()},
		{"Mean format score", fmt.Sprintf("%.2f", s.MeanForm)},
		{"Mean tone score", fmt.Sprintf("%.2f", s.MeanTone)},
		{"Mean rhyme score", fmt.Sprintf("%.2f", s.MeanRhyme)},
		{"Mean total score", fmt.Sprintf("%.2f", s.MeanTotal)},
	})
	_ = table.Render()
}
