package ui

import (
	"fmt"

	"portfolio-arcade/achievement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (r *Renderer) drawAchievements(f Frame, fontSize int32) {
	p := r.layout.Panel
	if p.Width == 0 {
		return
	}
	rl.DrawRectangleRec(p, rl.Fade(rl.DarkGray, 0.6))

	unlocked := 0
	for _, a := range f.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	x := int32(p.X) + 8
	y := int32(p.Y) + 8
	rl.DrawText(fmt.Sprintf("Achievements %d/%d", unlocked, len(f.Achievements)), x, y, fontSize, rl.Gold)
	y += fontSize + 10

	small := max(fontSize-4, 10)
	for _, a := range f.Achievements {
		if y+fontSize+small > int32(p.Y+p.Height) {
			break
		}
		r.drawAchievement(a, x, y, fontSize, small)
		y += fontSize + small + 10
	}
}

func (r *Renderer) drawAchievement(a achievement.Achievement, x, y, fontSize, small int32) {
	name, color := a.Name, rl.Gray
	if a.Unlocked {
		color = rl.Green
	} else {
		name = "? " + name
	}
	rl.DrawText(name, x, y, fontSize, color)
	rl.DrawText(a.Description, x+6, y+fontSize+2, small, rl.LightGray)
}

func (r *Renderer) drawToasts(toasts []string, fontSize int32) {
	y := int32(borderPadding)
	for _, text := range toasts {
		w := rl.MeasureText(text, fontSize) + 20
		x := r.screenWidth - w - borderPadding
		rl.DrawRectangle(x, y, w, fontSize+12, rl.Fade(rl.DarkGreen, 0.9))
		rl.DrawText(text, x+10, y+6, fontSize, rl.White)
		y += fontSize + 16
	}
}
