package model

// ReservedMetadataDocument is the bookkeeping document kept inside each RAG
// store. It must never surface as a citation.
const ReservedMetadataDocument = ".project-metadata.json"

// NoAnswerFallback is returned when the RAG query produces no answer text.
const NoAnswerFallback = "No relevant information was found in the project documents."

// GroundingChunk is a retrieved document fragment cited by an answer.
type GroundingChunk struct {
	Text         string `json:"text"`
	DocumentName string `json:"documentName"`
	Title        string `json:"title"`
}

// Answer is the result of a RAG query: generated text plus the grounding
// chunks that survived citation filtering.
type Answer struct {
	Text   string           `json:"answer"`
	Chunks []GroundingChunk `json:"groundingChunks"`
}
