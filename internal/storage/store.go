package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/labelmaker/internal/annotate"
	"github.com/san-kum/labelmaker/internal/thermal"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "segments.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Timestamp time.Time       `json:"timestamp"`
	Source    thermal.Source  `json:"source"`
	TotalTime float64         `json:"total_time"`
	Header    annotate.Header `json:"header"`
	Output    string          `json:"output,omitempty"`
	Summary   thermal.Summary `json:"summary"`
}

// Sample is one sampled point of a stored schedule.
type Sample struct {
	Segment int     `json:"segment"`
	Kind    string  `json:"kind"`
	Index   int     `json:"index"`
	Time    float64 `json:"time"`
	Temp    float64 `json:"temp"`
}

// Save writes the schedule summary and its sampled segment vectors under a
// new run directory and returns the run id.
func (s *Store) Save(title string, sched *thermal.Schedule, header annotate.Header, output string) (string, error) {
	vectors, err := sched.SegmentVectors(nil)
	if err != nil {
		return "", err
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%d_%s", slug(title), now.Unix(), uuid.NewString()[:8])

	meta := RunMetadata{
		ID:        runID,
		Title:     title,
		Timestamp: now,
		Source:    sched.Source(),
		TotalTime: sched.TotalTime(),
		Header:    header,
		Output:    output,
		Summary:   sched.Summary(),
	}

	if err := s.saveRun(meta, vectors); err != nil {
		return "", err
	}
	return runID, nil
}

// saveRun writes both run files. A run directory that could not be fully
// written is removed so List never reports it.
func (s *Store) saveRun(meta RunMetadata, vectors []thermal.Vector) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	err := writeMetadata(filepath.Join(runDir, metadataFile), meta)
	if err == nil {
		err = writeSamples(filepath.Join(runDir, samplesFile), vectors)
	}
	if err != nil {
		os.RemoveAll(runDir)
		return err
	}
	return nil
}

func writeMetadata(path string, meta RunMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeSamples(path string, vectors []thermal.Vector) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"segment", "kind", "index", "time", "temp"}); err != nil {
		return err
	}
	for i, v := range vectors {
		for j := range v.Times {
			row := []string{
				strconv.Itoa(i),
				v.Segment.Kind.String(),
				strconv.Itoa(v.Segment.Index),
				strconv.FormatFloat(v.Times[j], 'f', 6, 64),
				strconv.FormatFloat(v.Temps[j], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadVectors reads the sampled points of a run. Malformed rows are skipped.
func (s *Store) LoadVectors(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 5 {
			continue
		}
		seg, err1 := strconv.Atoi(record[0])
		idx, err2 := strconv.Atoi(record[2])
		t, err3 := strconv.ParseFloat(record[3], 64)
		temp, err4 := strconv.ParseFloat(record[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		samples = append(samples, Sample{Segment: seg, Kind: record[1], Index: idx, Time: t, Temp: temp})
	}

	return samples, nil
}

// ExportData is the JSON document written by ExportJSON.
type ExportData struct {
	Run     RunMetadata `json:"run"`
	Samples []Sample    `json:"samples"`
}

// ExportJSON writes a run's metadata and samples as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadVectors(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Samples: samples})
}

func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "label"
	}
	return b.String()
}
