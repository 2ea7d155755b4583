package vocab

// FallbackWords returns a small deterministic word list used when neither
// the catalog nor the AI generator can supply vocabulary for a topic. The
// session still works, just with generic content.
func FallbackWords(topicName string) []Item {
	out := make([]Item, len(fallbackList))
	copy(out, fallbackList)
	return out
}

var fallbackList = []Item{
	{Term: "improve", Phonetic: "/ɪmˈpruːv/", Translation: "cải thiện", Example: "Practice every day to improve your vocabulary.", PartOfSpeech: "verb"},
	{Term: "remember", Phonetic: "/rɪˈmem.bər/", Translation: "ghi nhớ", Example: "I remember new words by using them in sentences.", PartOfSpeech: "verb"},
	{Term: "meaning", Phonetic: "/ˈmiː.nɪŋ/", Translation: "nghĩa", Example: "Look up the meaning before guessing.", PartOfSpeech: "noun"},
	{Term: "practice", Phonetic: "/ˈpræk.tɪs/", Translation: "luyện tập", Example: "Practice makes perfect.", PartOfSpeech: "noun"},
	{Term: "sentence", Phonetic: "/ˈsen.təns/", Translation: "câu", Example: "Write a sentence with each new word.", PartOfSpeech: "noun"},
	{Term: "vocabulary", Phonetic: "/vəˈkæb.jə.lər.i/", Translation: "từ vựng", Example: "A rich vocabulary helps you read faster.", PartOfSpeech: "noun"},
	{Term: "pronounce", Phonetic: "/prəˈnaʊns/", Translation: "phát âm", Example: "Pronounce the word slowly at first.", PartOfSpeech: "verb"},
	{Term: "fluent", Phonetic: "/ˈfluː.ənt/", Translation: "lưu loát", Example: "She is fluent in three languages.", PartOfSpeech: "adjective"},
}
