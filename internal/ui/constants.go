package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
)

// Text fragments
const (
	SearchPlaceholder = "Search 250 products by title or brand"
	LoadingLabel      = "Loading results…"
	RetryLabel        = "Retry"

	SkeletonTitle = "░░░░░░░░░░"
	SkeletonBrand = "░░░░░░"
	SkeletonPrice = "░░░░"
)

// Layout sizing (result grid)
const (
	CardWidth  float32 = 200
	CardHeight float32 = 92
)
