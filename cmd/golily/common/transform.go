package common

import (
	"github.com/walteh/golily/pkg/changes"
	"github.com/walteh/golily/pkg/rhythm"
	"github.com/walteh/golily/pkg/transform"
)

// TransformOptions combines the file settings with the selection.
func (s *Selection) TransformOptions(f *File) ([]transform.Option, error) {
	opts := f.Config.TransformOptions()
	start, end, ok, err := s.Offsets(f.Text)
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, transform.WithSelection(start, end))
	}
	return opts, nil
}

// Apply returns the text with l applied, or the error that produced it.
func Apply(l *changes.List, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return l.Apply(), nil
}

// RhythmOptions carries the selection into a rhythm edit.
func (s *Selection) RhythmOptions(f *File) ([]rhythm.Option, error) {
	start, end, ok, err := s.Offsets(f.Text)
	if err != nil || !ok {
		return nil, err
	}
	return []rhythm.Option{rhythm.WithSelection(start, end)}, nil
}
