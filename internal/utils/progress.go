package utils

import "github.com/schollz/progressbar/v3"

// Standard progress bar descriptions
const (
	DescGathering  = "Gathering"
	DescFormatting = "Formatting"
	DescRendering  = "Rendering"
)

// NewProgressBar creates a consistently styled progress bar.
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (spinner mode).
//   - description: Text shown before the bar (e.g., DescGathering).
//
// Example:
//
//	bar := utils.NewProgressBar(len(paths), utils.DescGathering)
//	for _, p := range paths {
//	    // Process p
//	    bar.Add(1)
//	}
//	bar.Finish()
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		// Unknown total: use spinner mode
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
