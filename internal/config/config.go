// Package config handles runtime settings and worksheet files.
//
// The server itself keeps no files. The only thing read from disk is a
// worksheet passed explicitly to the CLI for one-shot analysis.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/HendryAvila/picots/internal/framework"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// --- Mode enum ---

// Mode controls how much hand-holding tool responses include.
type Mode string

const (
	// ModeGuided adds field tips and worked examples to responses.
	ModeGuided Mode = "guided"
	// ModeExpert returns results only.
	ModeExpert Mode = "expert"
)

// ModeEnv is the environment variable that selects the interaction mode.
const ModeEnv = "PICOTS_MODE"

// ModeFlag is the command-line flag that selects the interaction mode.
const ModeFlag = "mode"

// ParseMode normalizes a mode string, defaulting to guided for empty or
// unrecognized values.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeExpert:
		return ModeExpert
	default:
		return ModeGuided
	}
}

// ResolveMode picks the interaction mode. An explicitly set --mode flag
// wins over PICOTS_MODE, which wins over the flag's default. flags may be nil.
func ResolveMode(flags *pflag.FlagSet) Mode {
	v := viper.New()
	v.SetEnvPrefix("PICOTS")
	_ = v.BindEnv(ModeFlag)

	if flags != nil {
		if f := flags.Lookup(ModeFlag); f != nil {
			_ = v.BindPFlag(ModeFlag, f)
		}
	}
	return ParseMode(v.GetString(ModeFlag))
}

// --- Worksheet files ---

// Worksheet is the on-disk shape of a PICOTS worksheet.
//
//	framework:
//	  population: Adults aged 40-75 with hypertension
//	  intervention: ...
//	quality:
//	  internal_validity: high
//	  evidence_grading: b
//
// YAML is a superset of JSON, so JSON worksheets load too.
type Worksheet struct {
	Framework framework.State             `yaml:"framework" json:"framework"`
	Quality   framework.QualityAssessment `yaml:"quality" json:"quality"`
}

// ErrEmptyWorksheet is returned when a worksheet file has no content.
var ErrEmptyWorksheet = errors.New("worksheet file is empty")

// ParseWorksheet decodes worksheet bytes. Ratings missing from the file
// default to not_assessed.
func ParseWorksheet(data []byte) (*Worksheet, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyWorksheet
	}

	ws := &Worksheet{Quality: framework.NewQualityAssessment()}
	if err := yaml.Unmarshal(data, ws); err != nil {
		return nil, fmt.Errorf("parsing worksheet: %w", err)
	}
	return ws, nil
}

// LoadWorksheet reads and decodes a worksheet file.
func LoadWorksheet(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %s: %w", path, err)
	}

	ws, err := ParseWorksheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}
