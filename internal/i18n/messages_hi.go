package i18n

import "github.com/ppiankov/yojana/internal/model"

func init() {
	register(model.LangHindi, map[string]string{
		// Local search
		"search.empty_query": "कृपया हमारे डेटाबेस में खोजने के लिए कोई प्रश्न दर्ज करें।",
		"search.no_results":  "क्षमा करें, मुझे इस बारे में कोई जानकारी नहीं मिली। आप 'किसान', 'स्वास्थ्य', या 'शिक्षा' जैसे शब्दों के साथ प्रयास कर सकते हैं।",
		"search.header":      "मुझे आपकी खोज के लिए %d प्रासंगिक स्थानीय रिकॉर्ड मिले:\n\n",
		"search.category":    "श्रेणी",
		"search.eligibility": "पात्रता",
		"search.benefits":    "लाभ",
		"search.documents":   "दस्तावेज़",
		"search.apply":       "यहाँ आवेदन करें",

		// Degraded-mode banners
		"banner.degraded":    "⚠️ आप ऑफ़लाइन प्रतीत होते हैं। स्थानीय योजना डेटाबेस से उत्तर दिया जा रहा है।\n\n",
		"banner.unavailable": "⚠️ लाइव सहायक अभी उपलब्ध नहीं है। स्थानीय योजना डेटाबेस से उत्तर दिया जा रहा है।\n\n",

		// Discovery / comparison
		"discovery.header":      "नवीनतम योजना अपडेट:",
		"compare.unavailable":   "योजना तुलना अभी उपलब्ध नहीं है। ऑनलाइन होने पर पुनः प्रयास करें।",
		"compare.local_summary": "स्थानीय योजना डेटाबेस से विवरण। लाइव विश्लेषण अभी उपलब्ध नहीं है।",

		// Chat
		"chat.intro":   "**नमस्ते!** 🙏 मैं **Yojana** हूँ।\n\nमैं आपको सब्सिडी, छात्रवृत्ति और सामाजिक सुरक्षा लाभ खोजने में मदद कर सकता हूँ। आपकी क्या आवश्यकता है?",
		"chat.sources": "स्रोत:",
		"chat.goodbye": "धन्यवाद, फिर मिलेंगे!",
	})
}
