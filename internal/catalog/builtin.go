package catalog

import "github.com/dmitrijs2005/wheel/internal/garage"

// Builtin returns the compiled-in catalog.
func Builtin() []garage.Vehicle {
	return []garage.Vehicle{
		{
			ID:          1,
			Make:        "Toyota",
			Model:       "RAV4 Hybrid",
			Year:        2025,
			Price:       34500,
			Description: "The perfect blend of SUV capability and hybrid efficiency. Ready for any adventure.",
			Features:    []string{garage.LabelHeatedSeats, garage.LabelAppleCarPlay, garage.LabelAWD},
			Image:       "https://www.toyota.com/imgix/responsive/images/gallery/photos-videos/2025/rav4hybrid/xse/RAV_MY25_0010_V001_1.png?w=1600&h=900&q=90&fm=png&fit=max&cs=strip&bg=transparent",
		},
		{
			ID:          2,
			Make:        "Toyota",
			Model:       "Prius",
			Year:        2025,
			Price:       31200,
			Description: "The iconic hybrid, redesigned with stunning style and unbeatable fuel economy.",
			Features:    []string{garage.LabelHeatedSeats, garage.LabelAppleCarPlay, garage.LabelPushToStart},
			Image:       "https://www.toyota.com/imgix/responsive/images/gallery/photos-videos/2025/prius/le/PRI_MY25_0002_V001_1.png?w=1600&h=900&q=90&fm=png&fit=max&cs=strip&bg=transparent",
		},
		{
			ID:          3,
			Make:        "Toyota",
			Model:       "Tacoma",
			Year:        2025,
			Price:       38900,
			Description: "The legendary off-road truck, tougher and more capable than ever before.",
			Features:    []string{garage.LabelAppleCarPlay, garage.LabelPushToStart, garage.LabelAWD},
			Image:       "https://www.toyota.com/imgix/responsive/images/gallery/photos-videos/2024/tacoma/trd_offroad/TAC_MY24_0009_V001.png?w=1600&h=900&q=90&fm=png&fit=max&cs=strip&bg=transparent",
		},
	}
}
