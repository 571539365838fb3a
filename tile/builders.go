package tile

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"storegen/fontload"
	"storegen/raster"
)

// Assets are the shared inputs of every tile builder. Icon may be nil when
// the source icon file is missing; builders then skip the icon layers and
// still produce a complete tile.
type Assets struct {
	Icon    *raster.Raster
	Text    *fontload.Source
	Title   string
	Tagline string
}

// Marquee builds the large 1400x560 store banner: diagonal dark gradient,
// glowing icon on the left, title and tagline on the right.
func Marquee(a Assets) (*raster.Raster, error) {
	const width, height = 1400, 560

	bg, err := raster.Gradient(width, height,
		color.NRGBA{20, 20, 35, 255}, color.NRGBA{10, 10, 20, 255}, raster.AxisDiagonal)
	if err != nil {
		return nil, err
	}

	if a.Icon != nil {
		icon, err := a.Icon.Resize(250, 250)
		if err != nil {
			return nil, fmt.Errorf("could not scale icon: %w", err)
		}
		glow, err := raster.Glow(350, accent, 50, 30, 3)
		if err != nil {
			return nil, err
		}

		iconAt := image.Pt(150, (height-250)/2)
		if err := compose(bg, []layer{
			{glow, iconAt.Sub(image.Pt(50, 50))},
			{icon, iconAt},
		}); err != nil {
			return nil, err
		}
	}

	const textX, textY = 500, 180
	if title, err := a.Text.Face(100); err == nil {
		fontload.DrawString(bg, a.Title, title, color.NRGBA{255, 255, 255, 255}, image.Pt(textX, textY))
		title.Close()
	} else {
		slog.Warn("skipping marquee title", "error", err)
	}

	// Accent rule between title and tagline.
	if err := bg.Fill(image.Rect(textX, textY+130, textX+600, textY+134), accent); err != nil {
		return nil, err
	}

	if tagline, err := a.Text.Face(50); err == nil {
		fontload.DrawString(bg, a.Tagline, tagline, color.NRGBA{180, 180, 200, 255}, image.Pt(textX, textY+140))
		tagline.Close()
	} else {
		slog.Warn("skipping marquee tagline", "error", err)
	}

	return bg, nil
}

// Promo builds the small 440x280 tile: vertical gradient, glowing icon
// raised above a centered title.
func Promo(a Assets) (*raster.Raster, error) {
	const width, height = 440, 280

	bg, err := raster.Gradient(width, height,
		color.NRGBA{26, 26, 46, 255}, color.NRGBA{22, 33, 62, 255}, raster.AxisVertical)
	if err != nil {
		return nil, err
	}

	textY := height/2 + 50
	if a.Icon != nil {
		iconAt := image.Pt((width-a.Icon.Width())/2, (height-a.Icon.Height())/2-30)
		textY = iconAt.Y + a.Icon.Height() + 20

		glow, err := raster.Glow(a.Icon.Width()+40, accent, 20, 50, 2)
		if err != nil {
			return nil, err
		}
		if err := compose(bg, []layer{
			{glow, iconAt.Sub(image.Pt(20, 20))},
			{a.Icon, iconAt},
		}); err != nil {
			return nil, err
		}
	}

	if face, err := a.Text.Face(32); err == nil {
		w, _ := fontload.Measure(face, a.Title)
		fontload.DrawString(bg, a.Title, face, color.NRGBA{255, 255, 255, 255}, image.Pt((width-w)/2, textY))
		face.Close()
	} else {
		slog.Warn("skipping promo title", "error", err)
	}

	return bg, nil
}

// Discovery builds the stylized 1280x800 "feed detected" screenshot: a mock
// browser chrome with the glowing icon, a notification badge and a toast.
func Discovery(a Assets) (*raster.Raster, error) {
	const width, height = 1280, 800

	bg, err := raster.Gradient(width, height,
		color.NRGBA{30, 30, 30, 255}, color.NRGBA{10, 10, 10, 255}, raster.AxisVertical)
	if err != nil {
		return nil, err
	}

	// Toolbar band and omnibox.
	const toolbarTop, toolbarHeight = 100, 200
	if err := bg.Fill(image.Rect(0, toolbarTop, width, toolbarTop+toolbarHeight), color.NRGBA{40, 40, 40, 255}); err != nil {
		return nil, err
	}
	omnibox := image.Rect(100, 140, width-300, 260)
	if err := bg.Fill(omnibox, color.NRGBA{20, 20, 20, 255}); err != nil {
		return nil, err
	}
	if err := outlineRect(bg, omnibox, color.NRGBA{60, 60, 60, 255}, 2); err != nil {
		return nil, err
	}

	if a.Icon != nil {
		icon, err := a.Icon.Resize(150, 150)
		if err != nil {
			return nil, fmt.Errorf("could not scale icon: %w", err)
		}
		glow, err := raster.Glow(150+60, accent, 30, 40, 2)
		if err != nil {
			return nil, err
		}
		badge, err := notificationBadge(60)
		if err != nil {
			return nil, err
		}

		iconAt := image.Pt(width-250, 125)
		if err := compose(bg, []layer{
			{glow, iconAt.Sub(image.Pt(30, 30))},
			{icon, iconAt},
			{badge, iconAt.Add(image.Pt(90, 90))},
		}); err != nil {
			return nil, err
		}
	}

	// Toast card below the toolbar with two placeholder text lines.
	const toastW, toastH = 400, 100
	toast := image.Rect(width-toastW-50, toolbarTop+toolbarHeight+20,
		width-50, toolbarTop+toolbarHeight+20+toastH)
	if err := bg.Fill(toast, color.NRGBA{26, 26, 46, 255}); err != nil {
		return nil, err
	}
	if err := outlineRect(bg, toast, accent, 2); err != nil {
		return nil, err
	}
	lines := []struct {
		rect image.Rectangle
		col  color.NRGBA
	}{
		{image.Rect(toast.Min.X+20, toast.Min.Y+30, toast.Min.X+300, toast.Min.Y+40), color.NRGBA{200, 200, 200, 255}},
		{image.Rect(toast.Min.X+20, toast.Min.Y+60, toast.Min.X+200, toast.Min.Y+70), color.NRGBA{100, 100, 100, 255}},
	}
	for _, l := range lines {
		if err := bg.Fill(l.rect, l.col); err != nil {
			return nil, err
		}
	}

	return bg, nil
}

// notificationBadge is an accent disc with a white "1" tick.
func notificationBadge(size int) (*raster.Raster, error) {
	badge, err := disc(size, accent)
	if err != nil {
		return nil, err
	}
	tick := image.Rect(size*25/60, size*10/60, size*35/60, size*50/60)
	if err := badge.Fill(tick, color.NRGBA{255, 255, 255, 255}); err != nil {
		return nil, err
	}
	return badge, nil
}
