package i18n

import "github.com/ppiankov/yojana/internal/model"

func init() {
	register(model.LangEnglish, map[string]string{
		// Local search
		"search.empty_query": "Please enter a query to search our database.",
		"search.no_results":  "I couldn't find any specific local records for that. Try searching for broader terms like 'Farmers', 'Health', or 'Education'.",
		"search.header":      "I found %d relevant local records for your query:\n\n",
		"search.category":    "Category",
		"search.eligibility": "Eligibility",
		"search.benefits":    "Benefits",
		"search.documents":   "Documents",
		"search.apply":       "Apply Here",

		// Degraded-mode banners
		"banner.degraded":    "⚠️ You appear to be offline. Answering from the bundled scheme database.\n\n",
		"banner.unavailable": "⚠️ The live assistant is unavailable right now. Answering from the bundled scheme database.\n\n",

		// Discovery / comparison
		"discovery.header":       "Latest scheme updates:",
		"compare.unavailable":    "Scheme comparison is unavailable right now. Please try again once you are back online.",
		"compare.local_summary":  "Side-by-side details from the bundled scheme database. Live analysis is unavailable right now.",
		"citation.default_title": "Gov Source",

		// Chat
		"chat.intro":   "**Namaste!** 🙏 I am **Yojana**.\n\nI can help you find subsidies, scholarships, and social security benefits. What is your requirement?",
		"chat.prompt":  "You> ",
		"chat.answer":  "Yojana> ",
		"chat.sources": "Sources:",
		"chat.goodbye": "Goodbye!",
	})
}
