package wisdom

import (
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/wisdom/internal/guard"
	"github.com/MikeSquared-Agency/wisdom/internal/masters"
)

var placeholderEnglish = map[string]string{
	masters.Laozi:  "The river does not hurry, yet it reaches the sea. What you are grateful for today is already enough.",
	masters.Buddha: "This moment, noticed with care, is a gift. Breathe in what you have received and let it rest in you.",
	masters.Jesus:  "Every good gift is given in love. Give thanks, and let that thanks become kindness to another.",
	masters.Plato:  "To notice the good is the beginning of wisdom. Keep looking, and the good will show you more of itself.",
}

var placeholderChinese = map[string]string{
	masters.Laozi:  "上善若水，水善利万物而不争。你今天所感恩的，已经足够。",
	masters.Buddha: "此刻被用心觉察，便是礼物。吸入你所得到的，让它在心中安住。",
	masters.Jesus:  "一切美好的恩赐都出于爱。献上感谢，也让这份感谢化为对他人的善意。",
	masters.Plato:  "看见美好是智慧的开始。继续去看，美好会向你展现更多。",
}

// Placeholder returns static commentary used when the model is unavailable.
func Placeholder(entryID string, lang guard.Language) *Reflection {
	texts := placeholderEnglish
	if lang == guard.Chinese {
		texts = placeholderChinese
	}

	all := masters.All()
	commentary := make([]masters.Commentary, 0, len(all))
	for _, m := range all {
		commentary = append(commentary, masters.Commentary{
			ID:      m.ID,
			Name:    m.DisplayName(lang == guard.Chinese),
			Content: texts[m.ID],
		})
	}

	return &Reflection{
		ID:        uuid.New(),
		EntryID:   entryID,
		Language:  lang,
		Masters:   commentary,
		Fallback:  true,
		CreatedAt: time.Now().UTC(),
	}
}
