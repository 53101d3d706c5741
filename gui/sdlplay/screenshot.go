// This file is part of Gophervaders.
//
// Gophervaders is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophervaders is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophervaders.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/crtfrenzy/gophervaders/curated"
	"github.com/crtfrenzy/gophervaders/logger"
	"github.com/crtfrenzy/gophervaders/resources"

	"golang.org/x/image/draw"
)

// screenshot saves the most recent frame as a PNG in the current working
// directory. the image is scaled up by whatever scale the window is using.
func (pl *SdlPlay) screenshot() error {
	src := image.NewRGBA(image.Rect(0, 0, pl.width, pl.height))

	// the frame puts row zero at the bottom of the screen but the image
	// package puts row zero at the top, so the rows are flipped as they
	// are copied
	pl.crit.Lock()
	for y := 0; y < pl.height; y++ {
		o := (pl.height - 1 - y) * pl.width * pixelDepth
		copy(src.Pix[y*src.Stride:], pl.crit.pixels[o:o+pl.width*pixelDepth])
	}
	pl.crit.Unlock()

	// scale with the nearest-neighbour filter, same as the gl renderer
	scale := pl.prefs.scale.Get().(int)
	dst := image.NewRGBA(image.Rect(0, 0, pl.width*scale, pl.height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	fn := fmt.Sprintf("%s.png", resources.UniqueFilename("screenshot"))

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return curated.Errorf("screenshot: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	logger.Logf("sdlplay", "screenshot: %s", fn)

	return nil
}
