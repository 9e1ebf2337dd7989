package i18n

import "github.com/ppiankov/yojana/internal/model"

// Marathi set is partial; missing keys fall back to English.
func init() {
	register(model.LangMarathi, map[string]string{
		"search.no_results":  "क्षमस्व, मला याबद्दल कोणतीही माहिती सापडली नाही. 'शेतकरी', 'आरोग्य' किंवा 'शिक्षण' अशा शब्दांनी प्रयत्न करा.",
		"search.header":      "तुमच्या शोधासाठी %d स्थानिक नोंदी सापडल्या:\n\n",
		"search.category":    "श्रेणी",
		"search.eligibility": "पात्रता",
		"search.benefits":    "लाभ",
		"search.documents":   "कागदपत्रे",
		"search.apply":       "येथे अर्ज करा",

		"banner.degraded":    "⚠️ तुम्ही ऑफलाइन आहात असे दिसते. स्थानिक योजना डेटाबेसमधून उत्तर दिले जात आहे.\n\n",
		"banner.unavailable": "⚠️ लाइव्ह सहाय्यक सध्या उपलब्ध नाही. स्थानिक योजना डेटाबेसमधून उत्तर दिले जात आहे.\n\n",
	})
}
