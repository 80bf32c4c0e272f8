package settings

import (
	"encoding/json"
	"fmt"
	"io"
)

// configFile is the on-disk JSON shape. All four keys are written on save;
// pointer fields let a load distinguish a missing key from a zero value so
// partial configs merge instead of clobbering.
type configFile struct {
	BackgroundColor *string `json:"bg_color,omitempty"`
	TextColor       *string `json:"text_color,omitempty"`
	FontFamily      *string `json:"font_family,omitempty"`
	CenterContent   *bool   `json:"center,omitempty"`
}

// WriteConfig serializes the settings as indented JSON with all four keys
// present.
func WriteConfig(w io.Writer, s Settings) error {
	cfg := configFile{
		BackgroundColor: &s.BackgroundColor,
		TextColor:       &s.TextColor,
		FontFamily:      &s.FontFamily,
		CenterContent:   &s.CenterContent,
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ReadConfig parses a JSON config into a Partial. Unknown keys are ignored,
// missing keys stay nil. A parse failure returns an error without any
// partial result, so a corrupt file never half-applies.
func ReadConfig(r io.Reader) (Partial, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Partial{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Partial{}, fmt.Errorf("parsing config: %w", err)
	}

	return Partial{
		BackgroundColor: cfg.BackgroundColor,
		TextColor:       cfg.TextColor,
		FontFamily:      cfg.FontFamily,
		CenterContent:   cfg.CenterContent,
	}, nil
}
