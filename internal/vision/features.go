package vision

import (
	"image"
	"math"
	"sort"
)

// Feature extraction constants.
const (
	colorSampleStride   = 10  // every 10th pixel feeds dominant-color counting
	colorQuantStep      = 32  // channel quantization bucket size
	dominantColorCount  = 5
	symmetryTolerance   = 30.0 // brightness delta for a mirrored pixel pair
	edgeThreshold       = 50.0 // Sobel gradient magnitude cutoff
	roughEdgeDensity    = 0.25
	mediumEdgeDensity   = 0.10
	thirdsConcentration = 1.2 // edge energy ratio near third lines
)

// Color is one quantized dominant color.
type Color struct {
	R, G, B uint8
}

// Texture classes by edge density.
const (
	TextureRough  = "rough"
	TextureMedium = "medium"
	TextureSmooth = "smooth"
)

// Features are the measured visual properties of one image.
type Features struct {
	DominantColors []Color
	Brightness     float64 // mean luminance, [0, 255]
	Contrast       float64 // luminance standard deviation
	Symmetry       float64 // fraction of mirrored pixel pairs, [0, 1]
	RuleOfThirds   bool
	EdgeDensity    float64 // fraction of pixels over the edge threshold
	Texture        string
}

// Analyze computes all features from a decoded image. Pure CPU-bound math.
func Analyze(img image.Image) *Features {
	lum := luminanceGrid(img)
	f := &Features{
		DominantColors: dominantColors(img),
		Brightness:     mean(lum),
	}
	f.Contrast = stddev(lum, f.Brightness)
	f.Symmetry = horizontalSymmetry(lum)
	f.EdgeDensity, f.RuleOfThirds = edgeProfile(lum)
	f.Texture = textureClass(f.EdgeDensity)
	return f
}

// luminanceGrid converts the image to a row-major brightness grid.
func luminanceGrid(img image.Image) [][]float64 {
	b := img.Bounds()
	grid := make([][]float64, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]float64, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = (float64(r>>8) + float64(g>>8) + float64(bl>>8)) / 3
		}
		grid[y] = row
	}
	return grid
}

// dominantColors counts quantized colors over every 10th pixel and returns
// the top 5 by frequency.
func dominantColors(img image.Image) []Color {
	b := img.Bounds()
	counts := make(map[Color]int)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if i%colorSampleStride == 0 {
				r, g, bl, _ := img.At(x, y).RGBA()
				counts[quantize(uint8(r>>8), uint8(g>>8), uint8(bl>>8))]++
			}
			i++
		}
	}

	type freq struct {
		c Color
		n int
	}
	ordered := make([]freq, 0, len(counts))
	for c, n := range counts {
		ordered = append(ordered, freq{c, n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].n != ordered[j].n {
			return ordered[i].n > ordered[j].n
		}
		return less(ordered[i].c, ordered[j].c) // stable order for equal counts
	})

	n := dominantColorCount
	if len(ordered) < n {
		n = len(ordered)
	}
	out := make([]Color, n)
	for i := 0; i < n; i++ {
		out[i] = ordered[i].c
	}
	return out
}

func quantize(r, g, b uint8) Color {
	q := func(v uint8) uint8 {
		bucket := v / colorQuantStep * colorQuantStep
		return bucket + colorQuantStep/2
	}
	return Color{R: q(r), G: q(g), B: q(b)}
}

func less(a, b Color) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

// horizontalSymmetry is the fraction of left/right mirrored pixel pairs
// whose brightness difference stays within tolerance.
func horizontalSymmetry(lum [][]float64) float64 {
	if len(lum) == 0 {
		return 0
	}
	w := len(lum[0])
	pairs := 0
	matched := 0
	for _, row := range lum {
		for x := 0; x < w/2; x++ {
			pairs++
			if math.Abs(row[x]-row[w-1-x]) <= symmetryTolerance {
				matched++
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return float64(matched) / float64(pairs)
}

// edgeProfile runs a simplified Sobel pass, returning the fraction of edge
// pixels and whether edge energy concentrates along the third lines.
func edgeProfile(lum [][]float64) (density float64, thirds bool) {
	h := len(lum)
	if h < 3 {
		return 0, false
	}
	w := len(lum[0])
	if w < 3 {
		return 0, false
	}

	total := 0
	edges := 0
	var energySum, thirdsSum float64
	thirdsCount := 0

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := lum[y-1][x+1] + 2*lum[y][x+1] + lum[y+1][x+1] -
				lum[y-1][x-1] - 2*lum[y][x-1] - lum[y+1][x-1]
			gy := lum[y+1][x-1] + 2*lum[y+1][x] + lum[y+1][x+1] -
				lum[y-1][x-1] - 2*lum[y-1][x] - lum[y-1][x+1]
			mag := math.Abs(gx) + math.Abs(gy)

			total++
			energySum += mag
			if mag > edgeThreshold {
				edges++
			}
			if nearThirdLine(x, w) || nearThirdLine(y, h) {
				thirdsSum += mag
				thirdsCount++
			}
		}
	}

	density = float64(edges) / float64(total)
	if thirdsCount > 0 && total > 0 {
		overall := energySum / float64(total)
		band := thirdsSum / float64(thirdsCount)
		thirds = overall > 0 && band > overall*thirdsConcentration
	}
	return density, thirds
}

// nearThirdLine reports whether coordinate v sits within 5% of a third line.
func nearThirdLine(v, size int) bool {
	band := size / 20
	if band < 1 {
		band = 1
	}
	for _, line := range []int{size / 3, 2 * size / 3} {
		if v >= line-band && v <= line+band {
			return true
		}
	}
	return false
}

func textureClass(edgeDensity float64) string {
	switch {
	case edgeDensity > roughEdgeDensity:
		return TextureRough
	case edgeDensity > mediumEdgeDensity:
		return TextureMedium
	default:
		return TextureSmooth
	}
}

func mean(grid [][]float64) float64 {
	var sum float64
	n := 0
	for _, row := range grid {
		for _, v := range row {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func stddev(grid [][]float64, mean float64) float64 {
	var sum float64
	n := 0
	for _, row := range grid {
		for _, v := range row {
			d := v - mean
			sum += d * d
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}
