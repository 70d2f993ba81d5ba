package render

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src, 255)
	BlendMax                      // Dst = max(Dst, Src) per channel
)

func blend(dst, src RGB, mode BlendMode, alpha float64) RGB {
	switch mode {
	case BlendAlpha:
		return dst.Blend(src, alpha)
	case BlendAdd:
		return dst.Add(src)
	case BlendMax:
		return dst.Max(src)
	}
	return src
}
