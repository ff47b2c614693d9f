package ampl

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded Go font faces used for all labels. fontStyle selects a face;
// the experiment label uses bold italic per the house convention.
type fontStyle int

const (
	fontRegular fontStyle = iota
	fontBold
	fontItalic
	fontBoldItalic
)

var (
	fontsOnce sync.Once
	fontsErr  error
	fontSrc   [4]*text.FontSource
)

// loadFonts parses the embedded faces once. A parse failure disables text
// drawing (faces come back nil and gg skips DrawString on a nil face); it is
// reported through the logger rather than failing the plot.
func loadFonts() error {
	fontsOnce.Do(func() {
		for i, data := range [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			src, err := text.NewFontSource(data)
			if err != nil {
				fontsErr = fmt.Errorf("ampl: parsing embedded font: %w", err)
				return
			}
			fontSrc[i] = src
		}
	})
	return fontsErr
}

// face returns a rendering face of the given style and pixel size, or nil
// if the embedded fonts failed to parse.
func face(style fontStyle, size float64) text.Face {
	if err := loadFonts(); err != nil {
		Logger().Warn("ampl: text disabled", "err", err)
		return nil
	}
	return fontSrc[style].Face(size)
}
