package vocab

// Topic is an entry in the built-in topic catalog.
type Topic struct {
	ID          string
	Name        string
	Description string
	Category    Category
}

// Category groups catalog topics for the home screen filter.
type Category string

const (
	CategoryCommon   Category = "common"
	CategoryTOEIC    Category = "toeic"
	CategoryIELTS    Category = "ielts"
	CategoryBusiness Category = "business"
	CategoryTech     Category = "tech"
	CategoryMedical  Category = "medical"
)

// defaultTopics is the static topic catalog. Topics without an entry in
// staticWords are served through the AI generation path on first use.
var defaultTopics = []Topic{
	{ID: "c1", Name: "Daily Routine", Description: "Everyday habits and activities", Category: CategoryCommon},
	{ID: "c2", Name: "Family & Friends", Description: "Family and relationships", Category: CategoryCommon},
	{ID: "c3", Name: "Food & Cooking", Description: "Food, cooking and restaurants", Category: CategoryCommon},
	{ID: "c4", Name: "Travel & Tourism", Description: "Travel, airports and hotels", Category: CategoryCommon},
	{ID: "t1", Name: "Office Life", Description: "Office supplies, equipment, procedures", Category: CategoryTOEIC},
	{ID: "t2", Name: "Human Resources", Description: "Recruiting, interviews, personnel", Category: CategoryTOEIC},
	{ID: "t3", Name: "Marketing", Description: "Advertising, markets and sales", Category: CategoryTOEIC},
	{ID: "i1", Name: "Environment", Description: "Environment and climate change", Category: CategoryIELTS},
	{ID: "i2", Name: "Education", Description: "Education, university, research", Category: CategoryIELTS},
	{ID: "te1", Name: "Software Dev", Description: "Programming and software", Category: CategoryTech},
	{ID: "te2", Name: "Cyber Security", Description: "Security, hackers, safety online", Category: CategoryTech},
	{ID: "m1", Name: "Anatomy", Description: "Human body and anatomy", Category: CategoryMedical},
	{ID: "m2", Name: "Hospital", Description: "Hospitals, doctors, medical tools", Category: CategoryMedical},
}

// DefaultTopics returns the built-in topic catalog.
func DefaultTopics() []Topic {
	out := make([]Topic, len(defaultTopics))
	copy(out, defaultTopics)
	return out
}

// TopicByID looks up a catalog topic by its id.
func TopicByID(id string) (Topic, bool) {
	for _, t := range defaultTopics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// IsStaticTopic reports whether id names a topic with a built-in word list.
func IsStaticTopic(id string) bool {
	_, ok := staticWords[id]
	return ok
}

// StaticWords returns the built-in word list for a catalog topic id.
func StaticWords(id string) ([]Item, bool) {
	words, ok := staticWords[id]
	if !ok {
		return nil, false
	}
	out := make([]Item, len(words))
	copy(out, words)
	return out, true
}

var staticWords = map[string][]Item{
	"c1": {
		{Term: "wake up", Phonetic: "/weɪk ʌp/", Translation: "thức dậy", Example: "I wake up at six every morning.", PartOfSpeech: "verb"},
		{Term: "breakfast", Phonetic: "/ˈbrek.fəst/", Translation: "bữa sáng", Example: "She skips breakfast when she is late.", PartOfSpeech: "noun"},
		{Term: "commute", Phonetic: "/kəˈmjuːt/", Translation: "đi làm hàng ngày", Example: "My commute takes forty minutes by bus.", PartOfSpeech: "verb"},
		{Term: "schedule", Phonetic: "/ˈʃedʒ.uːl/", Translation: "lịch trình", Example: "My schedule is full on Mondays.", PartOfSpeech: "noun"},
		{Term: "habit", Phonetic: "/ˈhæb.ɪt/", Translation: "thói quen", Example: "Reading before bed is a good habit.", PartOfSpeech: "noun"},
		{Term: "chore", Phonetic: "/tʃɔːr/", Translation: "việc nhà", Example: "Washing dishes is my least favorite chore.", PartOfSpeech: "noun"},
		{Term: "nap", Phonetic: "/næp/", Translation: "giấc ngủ ngắn", Example: "He takes a short nap after lunch.", PartOfSpeech: "noun"},
		{Term: "errand", Phonetic: "/ˈer.ənd/", Translation: "việc vặt", Example: "I have to run a few errands downtown.", PartOfSpeech: "noun"},
		{Term: "routine", Phonetic: "/ruːˈtiːn/", Translation: "nề nếp hàng ngày", Example: "Exercise is part of my daily routine.", PartOfSpeech: "noun"},
		{Term: "alarm clock", Phonetic: "/əˈlɑːm klɒk/", Translation: "đồng hồ báo thức", Example: "The alarm clock rang at five thirty.", PartOfSpeech: "noun"},
	},
	"c3": {
		{Term: "recipe", Phonetic: "/ˈres.ɪ.pi/", Translation: "công thức nấu ăn", Example: "This recipe needs only five ingredients.", PartOfSpeech: "noun"},
		{Term: "ingredient", Phonetic: "/ɪnˈɡriː.di.ənt/", Translation: "nguyên liệu", Example: "Flour is the main ingredient in bread.", PartOfSpeech: "noun"},
		{Term: "boil", Phonetic: "/bɔɪl/", Translation: "luộc, đun sôi", Example: "Boil the eggs for seven minutes.", PartOfSpeech: "verb"},
		{Term: "grill", Phonetic: "/ɡrɪl/", Translation: "nướng vỉ", Example: "We grilled fish on the beach.", PartOfSpeech: "verb"},
		{Term: "seasoning", Phonetic: "/ˈsiː.zən.ɪŋ/", Translation: "gia vị", Example: "Add seasoning to taste.", PartOfSpeech: "noun"},
		{Term: "cuisine", Phonetic: "/kwɪˈziːn/", Translation: "ẩm thực", Example: "Vietnamese cuisine is famous for its balance.", PartOfSpeech: "noun"},
		{Term: "appetizer", Phonetic: "/ˈæp.ə.taɪ.zər/", Translation: "món khai vị", Example: "We ordered spring rolls as an appetizer.", PartOfSpeech: "noun"},
		{Term: "leftover", Phonetic: "/ˈleft.əʊ.vər/", Translation: "đồ ăn thừa", Example: "We had leftovers for dinner.", PartOfSpeech: "noun"},
		{Term: "simmer", Phonetic: "/ˈsɪm.ər/", Translation: "ninh nhỏ lửa", Example: "Let the soup simmer for an hour.", PartOfSpeech: "verb"},
		{Term: "utensil", Phonetic: "/juːˈten.səl/", Translation: "dụng cụ nấu ăn", Example: "Wooden utensils will not scratch the pan.", PartOfSpeech: "noun"},
	},
	"c4": {
		{Term: "itinerary", Phonetic: "/aɪˈtɪn.ər.ər.i/", Translation: "lịch trình chuyến đi", Example: "Our itinerary includes three cities.", PartOfSpeech: "noun"},
		{Term: "boarding pass", Phonetic: "/ˈbɔː.dɪŋ pɑːs/", Translation: "thẻ lên máy bay", Example: "Please show your boarding pass at the gate.", PartOfSpeech: "noun"},
		{Term: "layover", Phonetic: "/ˈleɪˌəʊ.vər/", Translation: "điểm dừng chân", Example: "We had a long layover in Singapore.", PartOfSpeech: "noun"},
		{Term: "reservation", Phonetic: "/ˌrez.əˈveɪ.ʃən/", Translation: "đặt chỗ trước", Example: "I made a reservation for two nights.", PartOfSpeech: "noun"},
		{Term: "luggage", Phonetic: "/ˈlʌɡ.ɪdʒ/", Translation: "hành lý", Example: "My luggage was lost by the airline.", PartOfSpeech: "noun"},
		{Term: "customs", Phonetic: "/ˈkʌs.təmz/", Translation: "hải quan", Example: "Declare these goods at customs.", PartOfSpeech: "noun"},
		{Term: "sightseeing", Phonetic: "/ˈsaɪtˌsiː.ɪŋ/", Translation: "tham quan", Example: "We went sightseeing in the old town.", PartOfSpeech: "noun"},
		{Term: "souvenir", Phonetic: "/ˌsuː.vənˈɪər/", Translation: "quà lưu niệm", Example: "She bought souvenirs for her family.", PartOfSpeech: "noun"},
		{Term: "departure", Phonetic: "/dɪˈpɑː.tʃər/", Translation: "khởi hành", Example: "The departure was delayed by fog.", PartOfSpeech: "noun"},
		{Term: "accommodation", Phonetic: "/əˌkɒm.əˈdeɪ.ʃən/", Translation: "chỗ ở", Example: "The tour price includes accommodation.", PartOfSpeech: "noun"},
	},
	"t1": {
		{Term: "deadline", Phonetic: "/ˈded.laɪn/", Translation: "hạn chót", Example: "The report deadline is Friday.", PartOfSpeech: "noun"},
		{Term: "photocopier", Phonetic: "/ˈfəʊ.təʊˌkɒp.i.ər/", Translation: "máy photocopy", Example: "The photocopier is out of toner.", PartOfSpeech: "noun"},
		{Term: "memo", Phonetic: "/ˈmem.əʊ/", Translation: "thông báo nội bộ", Example: "A memo about the new policy went out today.", PartOfSpeech: "noun"},
		{Term: "supervisor", Phonetic: "/ˈsuː.pə.vaɪ.zər/", Translation: "người giám sát", Example: "Ask your supervisor before leaving early.", PartOfSpeech: "noun"},
		{Term: "agenda", Phonetic: "/əˈdʒen.də/", Translation: "chương trình họp", Example: "The first item on the agenda is the budget.", PartOfSpeech: "noun"},
		{Term: "overtime", Phonetic: "/ˈəʊ.və.taɪm/", Translation: "làm thêm giờ", Example: "We worked overtime to finish the launch.", PartOfSpeech: "noun"},
		{Term: "stationery", Phonetic: "/ˈsteɪ.ʃən.ər.i/", Translation: "văn phòng phẩm", Example: "Order more stationery for the new hires.", PartOfSpeech: "noun"},
		{Term: "colleague", Phonetic: "/ˈkɒl.iːɡ/", Translation: "đồng nghiệp", Example: "My colleagues organized a farewell party.", PartOfSpeech: "noun"},
		{Term: "attachment", Phonetic: "/əˈtætʃ.mənt/", Translation: "tệp đính kèm", Example: "See the attachment for full figures.", PartOfSpeech: "noun"},
		{Term: "invoice", Phonetic: "/ˈɪn.vɔɪs/", Translation: "hóa đơn", Example: "The invoice is due within thirty days.", PartOfSpeech: "noun"},
	},
	"i1": {
		{Term: "deforestation", Phonetic: "/diːˌfɒr.ɪˈsteɪ.ʃən/", Translation: "nạn phá rừng", Example: "Deforestation threatens many species.", PartOfSpeech: "noun"},
		{Term: "emission", Phonetic: "/iˈmɪʃ.ən/", Translation: "khí thải", Example: "Carbon emissions keep rising.", PartOfSpeech: "noun"},
		{Term: "renewable", Phonetic: "/rɪˈnjuː.ə.bəl/", Translation: "tái tạo được", Example: "Solar power is a renewable source of energy.", PartOfSpeech: "adjective"},
		{Term: "biodiversity", Phonetic: "/ˌbaɪ.əʊ.daɪˈvɜː.sə.ti/", Translation: "đa dạng sinh học", Example: "Wetlands support rich biodiversity.", PartOfSpeech: "noun"},
		{Term: "drought", Phonetic: "/draʊt/", Translation: "hạn hán", Example: "The region suffered a severe drought.", PartOfSpeech: "noun"},
		{Term: "sustainable", Phonetic: "/səˈsteɪ.nə.bəl/", Translation: "bền vững", Example: "We need sustainable farming methods.", PartOfSpeech: "adjective"},
		{Term: "pollutant", Phonetic: "/pəˈluː.tənt/", Translation: "chất gây ô nhiễm", Example: "Factories released pollutants into the river.", PartOfSpeech: "noun"},
		{Term: "habitat", Phonetic: "/ˈhæb.ɪ.tæt/", Translation: "môi trường sống", Example: "Urban growth destroys natural habitats.", PartOfSpeech: "noun"},
		{Term: "conservation", Phonetic: "/ˌkɒn.səˈveɪ.ʃən/", Translation: "bảo tồn", Example: "The park is a conservation area.", PartOfSpeech: "noun"},
		{Term: "greenhouse effect", Phonetic: "/ˈɡriːn.haʊs ɪˌfekt/", Translation: "hiệu ứng nhà kính", Example: "The greenhouse effect warms the planet.", PartOfSpeech: "noun"},
	},
	"te1": {
		{Term: "repository", Phonetic: "/rɪˈpɒz.ɪ.tər.i/", Translation: "kho mã nguồn", Example: "Clone the repository before making changes.", PartOfSpeech: "noun"},
		{Term: "debug", Phonetic: "/ˌdiːˈbʌɡ/", Translation: "gỡ lỗi", Example: "She spent the afternoon debugging the parser.", PartOfSpeech: "verb"},
		{Term: "deploy", Phonetic: "/dɪˈplɔɪ/", Translation: "triển khai", Example: "We deploy to production every Friday.", PartOfSpeech: "verb"},
		{Term: "algorithm", Phonetic: "/ˈæl.ɡə.rɪ.ðəm/", Translation: "thuật toán", Example: "The sorting algorithm runs in linear time.", PartOfSpeech: "noun"},
		{Term: "refactor", Phonetic: "/ˌriːˈfæk.tər/", Translation: "tái cấu trúc mã", Example: "Refactor the module before adding features.", PartOfSpeech: "verb"},
		{Term: "compile", Phonetic: "/kəmˈpaɪl/", Translation: "biên dịch", Example: "The project compiles without warnings.", PartOfSpeech: "verb"},
		{Term: "framework", Phonetic: "/ˈfreɪm.wɜːk/", Translation: "khung phần mềm", Example: "They built the site with a web framework.", PartOfSpeech: "noun"},
		{Term: "merge", Phonetic: "/mɜːdʒ/", Translation: "hợp nhất", Example: "Merge the branch after the review passes.", PartOfSpeech: "verb"},
		{Term: "latency", Phonetic: "/ˈleɪ.tən.si/", Translation: "độ trễ", Example: "Caching cut the latency in half.", PartOfSpeech: "noun"},
		{Term: "dependency", Phonetic: "/dɪˈpen.dən.si/", Translation: "phụ thuộc", Example: "Pin the dependency to a fixed version.", PartOfSpeech: "noun"},
	},
}
