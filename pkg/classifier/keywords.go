package classifier

// termClass is a named bucket of keywords beyond primary/secondary. All such
// buckets carry the same weighting tier; the tag only exists for readability.
type termClass struct {
	tag   string
	terms []string
}

// keywordGroup holds the term lists for one category. Terms may be multi-word
// phrases; the context scorer matches them as literal substrings while the
// vocabulary builder splits them into words.
type keywordGroup struct {
	primary   []string
	secondary []string
	extra     []termClass
}

// knowledgeBase is static, read-only data. List order matters: within a
// category, primary beats secondary beats extra when the same word appears in
// several lists, and earlier categories beat later ones.
var knowledgeBase = [NumCategories]keywordGroup{
	Technology: {
		primary: []string{
			"technology", "software", "artificial intelligence", "smartphone",
			"computer", "internet", "mobile app", "startup",
		},
		secondary: []string{
			"gadget", "device", "digital", "silicon valley",
			"chip", "robot", "data", "algorithm",
		},
		extra: []termClass{
			{tag: "companies", terms: []string{
				"google", "apple", "microsoft", "amazon", "nvidia", "tesla",
			}},
			{tag: "concepts", terms: []string{
				"machine learning", "cloud computing", "cybersecurity",
				"blockchain", "quantum computing", "data privacy",
			}},
		},
	},
	Business: {
		primary: []string{
			"economy", "stock market", "federal reserve", "interest rates",
			"inflation", "earnings", "investors", "wall street",
		},
		secondary: []string{
			"market", "trade", "banking", "finance",
			"recession", "stocks", "profit", "shares",
		},
		extra: []termClass{
			{tag: "institutions", terms: []string{
				"nasdaq", "dow jones", "goldman sachs", "world bank",
				"imf", "treasury",
			}},
			{tag: "concepts", terms: []string{
				"merger", "acquisition", "ipo", "revenue",
				"quarterly results", "supply chain",
			}},
		},
	},
	Politics: {
		primary: []string{
			"election", "government", "congress", "senate",
			"president", "policy", "legislation", "campaign",
		},
		secondary: []string{
			"vote", "ballot", "democrat", "republican",
			"political", "reform", "debate", "coalition",
		},
		extra: []termClass{
			{tag: "institutions", terms: []string{
				"white house", "supreme court", "parliament",
				"united nations", "pentagon",
			}},
			{tag: "roles", terms: []string{
				"senator", "governor", "diplomat", "lawmaker",
				"prime minister",
			}},
			{tag: "concepts", terms: []string{
				"foreign policy", "climate policy", "immigration",
				"sanctions", "referendum",
			}},
		},
	},
	Sports: {
		primary: []string{
			"game", "team", "championship", "tournament",
			"season", "playoffs", "victory", "coach",
		},
		secondary: []string{
			"score", "win", "player", "league",
			"match", "fans", "stadium", "athlete",
		},
		extra: []termClass{
			{tag: "events", terms: []string{
				"super bowl", "world cup", "olympics",
				"grand slam", "world series",
			}},
			{tag: "roles", terms: []string{
				"quarterback", "striker", "goalkeeper",
				"pitcher", "point guard",
			}},
		},
	},
	Entertainment: {
		primary: []string{
			"movie", "film", "music", "concert",
			"celebrity", "hollywood", "television", "premiere",
		},
		secondary: []string{
			"show", "series", "award", "festival",
			"album", "drama", "comedy", "audience",
		},
		extra: []termClass{
			{tag: "media", terms: []string{
				"box office", "streaming", "trailer",
				"red carpet", "soundtrack",
			}},
			{tag: "roles", terms: []string{
				"actor", "actress", "director", "singer", "producer",
			}},
		},
	},
	Health: {
		primary: []string{
			"health", "doctors", "patients", "treatment",
			"medical", "disease", "medicine", "symptoms",
		},
		secondary: []string{
			"wellness", "therapy", "diagnosis", "nutrition",
			"fitness", "outbreak", "drug", "surgery",
		},
		extra: []termClass{
			{tag: "conditions", terms: []string{
				"diabetes", "cancer", "obesity", "influenza",
				"heart disease",
			}},
			{tag: "care", terms: []string{
				"hospital", "vaccine", "clinical trial",
				"public health", "mental health",
			}},
		},
	},
	Science: {
		primary: []string{
			"research", "scientists", "discovery", "experiment",
			"study", "nasa", "laboratory", "space",
		},
		secondary: []string{
			"breakthrough", "theory", "climate", "species",
			"physics", "universe", "fossil", "genome",
		},
		extra: []termClass{
			{tag: "fields", terms: []string{
				"astronomy", "biology", "genetics", "chemistry",
				"neuroscience",
			}},
			{tag: "missions", terms: []string{
				"spacecraft", "telescope", "mars rover",
				"space station", "satellite",
			}},
		},
	},
}

// classLists returns every term list of a group in precedence order together
// with its context-match weight (primary 4, secondary 3, everything else 2).
func (g keywordGroup) classLists() []weightedList {
	lists := make([]weightedList, 0, 2+len(g.extra))
	lists = append(lists, weightedList{terms: g.primary, weight: 4})
	lists = append(lists, weightedList{terms: g.secondary, weight: 3})
	for _, tc := range g.extra {
		lists = append(lists, weightedList{terms: tc.terms, weight: 2})
	}
	return lists
}

type weightedList struct {
	terms  []string
	weight float64
}
