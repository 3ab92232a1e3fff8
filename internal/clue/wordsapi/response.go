package wordsapi

// Response is the WordsAPI /words/{word} payload.
// https://rapidapi.com/dpventures/api/wordsapi
type Response struct {
	Word      string   `json:"word"`
	Frequency float64  `json:"frequency"`
	Results   []Result `json:"results"`
}

type Result struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Examples     []string `json:"examples"`
}
