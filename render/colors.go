package render

// Palette shared by the game screens
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbText       = RGB{192, 202, 245} // Default foreground
	RgbDim        = RGB{86, 95, 137}   // Secondary text
	RgbString     = RGB{120, 120, 120} // Balloon strings
	RgbCannon     = RGB{169, 177, 214} // Cannon body and barrel
	RgbPiercing   = RGB{255, 158, 100} // Piercing shot and ammo label
	RgbArea       = RGB{125, 207, 255} // Area shot and ammo label
	RgbShockwave  = RGB{224, 175, 104} // Area impact ring
	RgbDizzy      = RGB{187, 154, 247} // Dizzy spiral
	RgbHint       = RGB{255, 255, 0}   // Target prompt
	RgbJam        = RGB{247, 118, 142} // Jam indicator and wrong marks
	RgbCorrect    = RGB{158, 206, 106} // Correct marks
	RgbSelection  = RGB{65, 72, 104}   // Selected option background
	RgbScore      = RGB{255, 255, 255} // Score text
	RGBBlack      = RGB{0, 0, 0}
)
