package bank

// seedRules defines the 13 grammar rules covering everyday English.
var seedRules = []Rule{
	{
		ID:          "sentence-structure",
		Title:       "Sentence Structure (S + V + O)",
		Category:    CategoryBasics,
		Description: "Most English sentences follow: Subject + Verb + Object",
		Examples:    []string{"I eat breakfast.", "She likes coffee.", "They play football."},
		Color:       "oklch(0.60 0.15 270)",
	},
	{
		ID:          "be-verb",
		Title:       `The "Be" Verb (am, is, are)`,
		Category:    CategoryBasics,
		Description: "Used for descriptions, identity, feelings, and continuous tense.",
		Examples:    []string{"I am tired.", "She is a doctor.", "They are happy."},
		Color:       "oklch(0.60 0.15 270)",
	},
	{
		ID:          "simple-present",
		Title:       "Simple Present (Habit / Fact)",
		Category:    CategoryTenses,
		Description: "Used for habits, facts, and daily routines.",
		Examples:    []string{"I work every day.", "He drives to work.", "Water boils at 100°C."},
		Color:       "oklch(0.65 0.18 160)",
	},
	{
		ID:          "present-continuous",
		Title:       "Present Continuous (Now)",
		Category:    CategoryTenses,
		Description: "Used for actions happening right now or temporary actions.",
		Examples:    []string{"I am eating now.", "She is studying English.", "They are working today."},
		Color:       "oklch(0.65 0.18 160)",
	},
	{
		ID:          "simple-past",
		Title:       "Simple Past (Finished Action)",
		Category:    CategoryTenses,
		Description: "Used for completed actions in the past.",
		Examples:    []string{"I watched a movie.", "She went to school.", "They ate dinner."},
		Color:       "oklch(0.65 0.18 160)",
	},
	{
		ID:          "future",
		Title:       "Future (will / going to)",
		Category:    CategoryTenses,
		Description: "Will for promises/decisions, going to for plans.",
		Examples:    []string{"I will call you later.", "She is going to travel next month.", "They will help us."},
		Color:       "oklch(0.65 0.18 160)",
	},
	{
		ID:          "modal-verbs",
		Title:       "Modal Verbs",
		Category:    CategoryModals,
		Description: "Can (ability), should (advice), must (obligation), may (permission), could (polite request).",
		Examples:    []string{"I can swim.", "You should rest.", "You must stop.", "Could you help me?"},
		Color:       "oklch(0.70 0.16 30)",
	},
	{
		ID:          "questions",
		Title:       "Questions",
		Category:    CategoryQuestions,
		Description: "Yes/No questions with Be verb or Do/Does. WH questions with What, Where, Why, When, How, Who.",
		Examples:    []string{"Are you ready?", "Do you speak English?", "What do you want?", "Where are you going?"},
		Color:       "oklch(0.55 0.20 40)",
	},
	{
		ID:          "articles",
		Title:       "Articles (a, an, the)",
		Category:    CategoryArticles,
		Description: "A before consonants, an before vowels, the for specific things.",
		Examples:    []string{"a car", "an apple", "the restaurant we visited"},
		Color:       "oklch(0.65 0.15 200)",
	},
	{
		ID:          "prepositions",
		Title:       "Prepositions",
		Category:    CategoryPrepositions,
		Description: "In (months/years), on (days/surfaces), at (time/location), to (movement), for (purpose/duration).",
		Examples:    []string{"in 2025", "on Monday", "at 5:00", "I'm going to work", "This is for you"},
		Color:       "oklch(0.60 0.18 320)",
	},
	{
		ID:          "countable-uncountable",
		Title:       "Countable vs. Uncountable Nouns",
		Category:    CategoryNouns,
		Description: "Countable: many, few, a/an. Uncountable: much, little, some.",
		Examples:    []string{"a book", "many cars", "water", "information", "money"},
		Color:       "oklch(0.55 0.14 210)",
	},
	{
		ID:          "comparatives",
		Title:       "Comparing (Comparatives & Superlatives)",
		Category:    CategoryAdjectives,
		Description: "Comparative: adj + -er / more. Superlative: adj + -est / most.",
		Examples:    []string{"bigger", "more beautiful", "the biggest", "the most beautiful"},
		Color:       "oklch(0.70 0.12 80)",
	},
	{
		ID:          "expressions",
		Title:       "Common Everyday Expressions",
		Category:    CategoryExpressions,
		Description: "Common verb patterns used in daily conversation.",
		Examples:    []string{"I want to eat.", "I have to go.", "I need to study.", "I would like to order food."},
		Color:       "oklch(0.65 0.16 250)",
	},
}

// seedQuestions defines the built-in question bank. IDs are sequential (q1..q48)
// so generated questions can continue the numbering.
var seedQuestions = []Question{
	{
		ID:          "q1",
		RuleID:      "sentence-structure",
		Type:        TypeMultipleChoice,
		Prompt:      "Which sentence has correct S + V + O structure?",
		Options:     []string{"Breakfast eat I.", "I eat breakfast.", "Eat I breakfast.", "I breakfast eat."},
		Answer:      "I eat breakfast.",
		Explanation: `English sentences follow Subject + Verb + Object order: "I" (subject) + "eat" (verb) + "breakfast" (object).`,
	},
	{
		ID:          "q2",
		RuleID:      "be-verb",
		Type:        TypeFillBlank,
		Prompt:      "I ___ tired after work.",
		Answer:      "am",
		Explanation: `Use "am" with the subject "I". Remember: I am, he/she/it is, you/we/they are.`,
	},
	{
		ID:          "q3",
		RuleID:      "be-verb",
		Type:        TypeMultipleChoice,
		Prompt:      "They ___ happy today.",
		Options:     []string{"am", "is", "are", "be"},
		Answer:      "are",
		Explanation: `Use "are" with the subject "They". Remember: I am, he/she/it is, you/we/they are.`,
	},
	{
		ID:          "q4",
		RuleID:      "simple-present",
		Type:        TypeFillBlank,
		Prompt:      "She ___ to work every day. (drive)",
		Answer:      "drives",
		Explanation: `Add "s" or "es" to verbs with he/she/it in simple present: drive → drives.`,
	},
	{
		ID:          "q5",
		RuleID:      "simple-present",
		Type:        TypeMultipleChoice,
		Prompt:      "Water ___ at 100°C.",
		Options:     []string{"boil", "boils", "boiling", "boiled"},
		Answer:      "boils",
		Explanation: `Use simple present for facts. "Water" is singular (it), so add "s": boils.`,
	},
	{
		ID:          "q6",
		RuleID:      "present-continuous",
		Type:        TypeFillBlank,
		Prompt:      "I ___ English right now. (study)",
		Answer:      "am studying",
		Explanation: `Present continuous = am/is/are + verb-ing. With "I", use "am studying".`,
	},
	{
		ID:          "q7",
		RuleID:      "present-continuous",
		Type:        TypeMultipleChoice,
		Prompt:      "She ___ dinner at the moment.",
		Options:     []string{"cook", "cooks", "is cooking", "cooked"},
		Answer:      "is cooking",
		Explanation: "Use present continuous (is/am/are + verb-ing) for actions happening now.",
	},
	{
		ID:          "q8",
		RuleID:      "simple-past",
		Type:        TypeFillBlank,
		Prompt:      "I ___ a movie yesterday. (watch)",
		Answer:      "watched",
		Explanation: "Simple past of regular verbs: add -ed to the base form. Watch → watched.",
	},
	{
		ID:          "q9",
		RuleID:      "simple-past",
		Type:        TypeMultipleChoice,
		Prompt:      "They ___ dinner at 7 PM last night.",
		Options:     []string{"eat", "eats", "eating", "ate"},
		Answer:      "ate",
		Explanation: `"Eat" is irregular. Simple past form is "ate", not "eated".`,
	},
	{
		ID:          "q10",
		RuleID:      "future",
		Type:        TypeMultipleChoice,
		Prompt:      "I ___ call you later.",
		Options:     []string{"will", "going to", "am", "can"},
		Answer:      "will",
		Explanation: `Use "will" for promises and spontaneous decisions: I will call you later.`,
	},
	{
		ID:          "q11",
		RuleID:      "future",
		Type:        TypeFillBlank,
		Prompt:      "She ___ travel next month. (going to)",
		Answer:      "is going to",
		Explanation: `Use "is/am/are going to" for plans. With "she", use "is going to".`,
	},
	{
		ID:          "q12",
		RuleID:      "modal-verbs",
		Type:        TypeMultipleChoice,
		Prompt:      "I ___ swim very well.",
		Options:     []string{"can", "must", "should", "may"},
		Answer:      "can",
		Explanation: `Use "can" to express ability: I can swim = I am able to swim.`,
	},
	{
		ID:          "q13",
		RuleID:      "modal-verbs",
		Type:        TypeMultipleChoice,
		Prompt:      "You ___ rest when you are tired.",
		Options:     []string{"can", "must", "should", "could"},
		Answer:      "should",
		Explanation: `Use "should" for advice or recommendations: You should rest.`,
	},
	{
		ID:          "q14",
		RuleID:      "modal-verbs",
		Type:        TypeFillBlank,
		Prompt:      "___ you help me, please? (polite request)",
		Answer:      "Could",
		Explanation: `Use "could" for polite requests: Could you help me?`,
	},
	{
		ID:          "q15",
		RuleID:      "questions",
		Type:        TypeErrorCorrection,
		Prompt:      "You are ready?",
		Answer:      "Are you ready?",
		Explanation: `For yes/no questions with "be" verb, put the verb before the subject: Are you ready?`,
	},
	{
		ID:          "q16",
		RuleID:      "questions",
		Type:        TypeMultipleChoice,
		Prompt:      "___ you speak English?",
		Options:     []string{"Are", "Do", "Is", "Does"},
		Answer:      "Do",
		Explanation: `For yes/no questions with regular verbs and "you", use "Do": Do you speak English?`,
	},
	{
		ID:          "q17",
		RuleID:      "questions",
		Type:        TypeFillBlank,
		Prompt:      "___ are you going?",
		Answer:      "Where",
		Explanation: `Use "Where" to ask about location or destination.`,
	},
	{
		ID:          "q18",
		RuleID:      "articles",
		Type:        TypeMultipleChoice,
		Prompt:      "I need ___ pen.",
		Options:     []string{"a", "an", "the", "no article"},
		Answer:      "a",
		Explanation: `Use "a" before words starting with consonant sounds: a pen, a car, a phone.`,
	},
	{
		ID:          "q19",
		RuleID:      "articles",
		Type:        TypeMultipleChoice,
		Prompt:      "She is ___ engineer.",
		Options:     []string{"a", "an", "the", "no article"},
		Answer:      "an",
		Explanation: `Use "an" before words starting with vowel sounds: an engineer, an apple.`,
	},
	{
		ID:          "q20",
		RuleID:      "articles",
		Type:        TypeFillBlank,
		Prompt:      "I saw ___ movie. ___ movie was great! (second blank)",
		Answer:      "The",
		Explanation: `Use "the" for specific things already mentioned: a movie (first mention) → the movie (specific movie we discussed).`,
	},
	{
		ID:          "q21",
		RuleID:      "prepositions",
		Type:        TypeMultipleChoice,
		Prompt:      "My birthday is ___ May.",
		Options:     []string{"in", "on", "at", "to"},
		Answer:      "in",
		Explanation: `Use "in" with months and years: in May, in 2025, in summer.`,
	},
	{
		ID:          "q22",
		RuleID:      "prepositions",
		Type:        TypeMultipleChoice,
		Prompt:      "The meeting is ___ Monday.",
		Options:     []string{"in", "on", "at", "to"},
		Answer:      "on",
		Explanation: `Use "on" with days and dates: on Monday, on January 5th.`,
	},
	{
		ID:          "q23",
		RuleID:      "prepositions",
		Type:        TypeFillBlank,
		Prompt:      "I wake up ___ 7:00 AM.",
		Answer:      "at",
		Explanation: `Use "at" with specific times: at 7:00, at noon, at midnight.`,
	},
	{
		ID:          "q24",
		RuleID:      "prepositions",
		Type:        TypeMultipleChoice,
		Prompt:      "I'm going ___ work.",
		Options:     []string{"in", "on", "at", "to"},
		Answer:      "to",
		Explanation: `Use "to" to show movement or direction: going to work, going to school.`,
	},
	{
		ID:          "q25",
		RuleID:      "countable-uncountable",
		Type:        TypeMultipleChoice,
		Prompt:      "I have ___ books.",
		Options:     []string{"many", "much", "a", "little"},
		Answer:      "many",
		Explanation: `Books are countable. Use "many" with countable nouns: many books, many cars.`,
	},
	{
		ID:          "q26",
		RuleID:      "countable-uncountable",
		Type:        TypeMultipleChoice,
		Prompt:      "I need ___ water.",
		Options:     []string{"many", "much", "few", "a"},
		Answer:      "much",
		Explanation: `Water is uncountable. Use "much" with uncountable nouns: much water, much time.`,
	},
	{
		ID:          "q27",
		RuleID:      "countable-uncountable",
		Type:        TypeFillBlank,
		Prompt:      "Can I have ___ apple? (one)",
		Answer:      "an",
		Explanation: `Apples are countable. Use "a/an" with singular countable nouns: an apple.`,
	},
	{
		ID:          "q28",
		RuleID:      "comparatives",
		Type:        TypeMultipleChoice,
		Prompt:      "This book is ___ than that one.",
		Options:     []string{"big", "bigger", "biggest", "more big"},
		Answer:      "bigger",
		Explanation: "For short adjectives (1 syllable), add -er for comparatives: big → bigger.",
	},
	{
		ID:          "q29",
		RuleID:      "comparatives",
		Type:        TypeMultipleChoice,
		Prompt:      "She is ___ beautiful than her sister.",
		Options:     []string{"beautifuler", "more beautiful", "most beautiful", "beautifulest"},
		Answer:      "more beautiful",
		Explanation: `For long adjectives (2+ syllables), use "more" for comparatives: more beautiful, more interesting.`,
	},
	{
		ID:          "q30",
		RuleID:      "comparatives",
		Type:        TypeFillBlank,
		Prompt:      "He is ___ tallest in the class. (superlative)",
		Answer:      "the",
		Explanation: `Superlatives always use "the": the biggest, the tallest, the most beautiful.`,
	},
	{
		ID:          "q31",
		RuleID:      "expressions",
		Type:        TypeMultipleChoice,
		Prompt:      "I ___ to eat pizza tonight.",
		Options:     []string{"want", "wanting", "wants", "wanted"},
		Answer:      "want",
		Explanation: `Common expression: "want to + verb". I want to eat, she wants to go.`,
	},
	{
		ID:          "q32",
		RuleID:      "expressions",
		Type:        TypeFillBlank,
		Prompt:      "I ___ to go now. (necessity)",
		Answer:      "have",
		Explanation: `Use "have to" to express necessity or obligation: I have to go, she has to study.`,
	},
	{
		ID:          "q33",
		RuleID:      "expressions",
		Type:        TypeMultipleChoice,
		Prompt:      "I ___ like a coffee, please.",
		Options:     []string{"want", "would", "will", "should"},
		Answer:      "would",
		Explanation: `Use "would like" for polite requests: I would like a coffee = I want a coffee (polite).`,
	},
	{
		ID:          "q34",
		RuleID:      "sentence-structure",
		Type:        TypeErrorCorrection,
		Prompt:      "Football play they.",
		Answer:      "They play football.",
		Explanation: "Correct order is Subject + Verb + Object: They (S) + play (V) + football (O).",
	},
	{
		ID:          "q35",
		RuleID:      "be-verb",
		Type:        TypeFillBlank,
		Prompt:      "He ___ a teacher.",
		Answer:      "is",
		Explanation: `Use "is" with he/she/it: He is a teacher, She is a doctor.`,
	},
	{
		ID:          "q36",
		RuleID:      "simple-present",
		Type:        TypeErrorCorrection,
		Prompt:      "She go to school every day.",
		Answer:      "She goes to school every day.",
		Explanation: `Add "s" or "es" to verbs with he/she/it in simple present: go → goes.`,
	},
	{
		ID:          "q37",
		RuleID:      "present-continuous",
		Type:        TypeErrorCorrection,
		Prompt:      "They working now.",
		Answer:      "They are working now.",
		Explanation: "Present continuous needs am/is/are + verb-ing: They are working.",
	},
	{
		ID:          "q38",
		RuleID:      "simple-past",
		Type:        TypeFillBlank,
		Prompt:      "She ___ to Paris last year. (go)",
		Answer:      "went",
		Explanation: `"Go" is irregular. Past form is "went", not "goed".`,
	},
	{
		ID:          "q39",
		RuleID:      "future",
		Type:        TypeMultipleChoice,
		Prompt:      "Tomorrow, we ___ visit our friends.",
		Options:     []string{"will", "are will", "will are", "wills"},
		Answer:      "will",
		Explanation: `Future with "will": subject + will + base verb. We will visit.`,
	},
	{
		ID:          "q40",
		RuleID:      "modal-verbs",
		Type:        TypeMultipleChoice,
		Prompt:      "You ___ stop at red lights. (obligation)",
		Options:     []string{"can", "must", "should", "may"},
		Answer:      "must",
		Explanation: `Use "must" for strong obligation or rules: You must stop at red lights.`,
	},
	{
		ID:          "q41",
		RuleID:      "questions",
		Type:        TypeMultipleChoice,
		Prompt:      "___ does she live?",
		Options:     []string{"What", "Where", "Who", "How"},
		Answer:      "Where",
		Explanation: `Use "Where" to ask about location: Where does she live?`,
	},
	{
		ID:          "q42",
		RuleID:      "questions",
		Type:        TypeErrorCorrection,
		Prompt:      "She does speak Spanish?",
		Answer:      "Does she speak Spanish?",
		Explanation: "Question word order: Does + subject + base verb? Does she speak Spanish?",
	},
	{
		ID:          "q43",
		RuleID:      "articles",
		Type:        TypeMultipleChoice,
		Prompt:      "I saw ___ cat. ___ cat was black. (first blank)",
		Options:     []string{"a", "an", "the", "no article"},
		Answer:      "a",
		Explanation: `Use "a/an" for first mention (non-specific): I saw a cat. Then use "the" for second mention: The cat was black.`,
	},
	{
		ID:          "q44",
		RuleID:      "prepositions",
		Type:        TypeMultipleChoice,
		Prompt:      "This gift is ___ you.",
		Options:     []string{"in", "on", "at", "for"},
		Answer:      "for",
		Explanation: `Use "for" to show purpose or recipient: This gift is for you.`,
	},
	{
		ID:          "q45",
		RuleID:      "countable-uncountable",
		Type:        TypeErrorCorrection,
		Prompt:      "I need many money.",
		Answer:      "I need much money.",
		Explanation: `Money is uncountable. Use "much" not "many": much money, much information.`,
	},
	{
		ID:          "q46",
		RuleID:      "comparatives",
		Type:        TypeFillBlank,
		Prompt:      "This is ___ best day ever! (superlative)",
		Answer:      "the",
		Explanation: `Always use "the" with superlatives: the best, the worst, the most expensive.`,
	},
	{
		ID:          "q47",
		RuleID:      "expressions",
		Type:        TypeMultipleChoice,
		Prompt:      "I ___ to learn English.",
		Options:     []string{"try", "trying", "tries", "tried"},
		Answer:      "try",
		Explanation: "Pattern: try to + verb. I try to learn, she tries to understand.",
	},
	{
		ID:          "q48",
		RuleID:      "sentence-structure",
		Type:        TypeMultipleChoice,
		Prompt:      "What is the correct sentence structure?",
		Options:     []string{"Subject + Object + Verb", "Verb + Subject + Object", "Subject + Verb + Object", "Object + Verb + Subject"},
		Answer:      "Subject + Verb + Object",
		Explanation: "English uses S + V + O order: I (S) love (V) pizza (O).",
	},
}
