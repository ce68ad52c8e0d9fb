package radar

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet holds the faces used on every chart. Parsed once per process.
type fontSet struct {
	Regular *truetype.Font
	Bold    *truetype.Font
}

var (
	fontsOnce sync.Once
	fonts     *fontSet
	fontsErr  error
)

func loadFonts() (*fontSet, error) {
	fontsOnce.Do(func() {
		regular, err := truetype.Parse(goregular.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		bold, err := truetype.Parse(gobold.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		fonts = &fontSet{Regular: regular, Bold: bold}
	})
	return fonts, fontsErr
}
