package translit

// wordOverrides pins conventional Roman spellings for words the bare
// character mapping would garble, mostly short grammar words whose
// vowels are never written. Exact whole-token match, highest priority.
var wordOverrides = map[string]string{
	// Copula and auxiliaries
	"ہے":  "hai",
	"ہیں": "hain",
	"ہوں": "hoon",
	"ہو":  "ho",
	"تھا": "tha",
	"تھی": "thi",
	"تھے": "the",

	// Case markers and particles
	"کا":  "ka",
	"کی":  "ki",
	"کے":  "ke",
	"کو":  "ko",
	"میں": "mein",
	"سے":  "se",
	"پر":  "par",
	"اور": "aur",
	"تو":  "to",
	"بھی": "bhi",

	// Pronouns
	"یہ": "yeh",
	"وہ": "woh",
	"اس": "is",
	"us": "us", // Latin homograph of اُس; kept so the table round-trips
	"ہم": "hum",
	"تم": "tum",
	"آپ": "aap",

	// Possessives
	"میرا": "mera",
	"میری": "meri",
	"میرے": "mere",
	"اپنا": "apna",
	"اپنی": "apni",
	"اپنے": "apne",

	// Progressive and perfective forms
	"رہا": "raha",
	"رہی": "rahi",
	"رہے": "rahe",
	"گیا": "gaya",
	"گئی": "gayi",
	"گئے": "gaye",

	// Verb stems common in lectures
	"کر":   "kar",
	"نکال": "nikal",
	"سکتا": "sakta",
	"سکتی": "sakti",
	"سکتے": "sakte",

	// Question words
	"کیا":   "kya",
	"کیوں":  "kyun",
	"کیسے":  "kaise",
	"کیسی":  "kaisi",
	"کیسا":  "kaisa",
	"کتنا":  "kitna",
	"کتنی":  "kitni",
	"کتنے":  "kitne",
	"کیونکہ": "kyunke",
	"تاکہ":  "taake",

	// Conjunctions and time words
	"جب":   "jab",
	"تب":   "tab",
	"اب":   "ab",
	"اگر":  "agar",
	"مگر":  "magar",
	"لیکن": "lekin",
	"پہلے":  "pehle",
	"بعد":  "baad",

	// Quantifiers
	"سب":  "sab",
	"کچھ": "kuch",
	"ہر":  "har",
	"بہت": "bohat",

	// The wala construction
	"والا": "wala",
	"والی": "wali",
	"والے": "wale",

	// Frequent verb forms
	"چاہیے":  "chahiye",
	"نہیں":   "nahi",
	"ہوتا":   "hota",
	"ہوتی":   "hoti",
	"ہوتے":   "hote",
	"دیکھیں": "dekhen",
	"سنیں":   "sunen",
	"پڑھیں":  "parhen",
	"لکھیں":  "likhen",

	// Academic vocabulary
	"ضروری":  "zaroori",
	"اہم":    "ahm",
	"تعلیم":  "taleem",
	"مسئلہ":  "masla",
	"قانون":  "qanoon",
	"امتحان": "imtihan",
	"سوال":   "sawal",
	"جواب":   "jawab",
	"مثال":   "misal",
	"نظریہ":  "nazriya",
	"نتیجہ":  "natija",
	"تحقیق":  "tehqeeq",
	"سائنس":  "science",
	"ریاضی":  "math",

	// Misc
	"ہاں":    "han",
	"جائے":   "jaye",
	"لڑکے":   "larke",
	"لڑکیاں": "larkiyan",
	"لڑکوں":  "larkon",
}
