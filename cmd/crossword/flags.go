package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/crossword/internal/wordpool"
)

// levelFlag is a difficulty level flag that rejects values outside 1-5.
type levelFlag wordpool.Level

func (f *levelFlag) String() string {
	return strconv.Itoa(int(*f))
}

func (f *levelFlag) Set(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	level, err := wordpool.ParseLevel(n)
	if err != nil {
		return err
	}
	*f = levelFlag(level)
	return nil
}

func (f *levelFlag) Type() string {
	return "level"
}

func (f *levelFlag) Level() wordpool.Level {
	return wordpool.Level(*f)
}

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatPDF  = "pdf"
)

var formats = []string{formatText, formatJSON, formatPDF}

type formatFlag string

func (f *formatFlag) String() string {
	return string(*f)
}

func (f *formatFlag) Set(value string) error {
	value = strings.ToLower(value)
	for _, format := range formats {
		if value == format {
			*f = formatFlag(value)
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, must be one of %s", value, strings.Join(formats, ", "))
}

func (f *formatFlag) Type() string {
	return "format"
}

var (
	_ pflag.Value = (*levelFlag)(nil)
	_ pflag.Value = (*formatFlag)(nil)
)
