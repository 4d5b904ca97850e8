package token

// Tokenizer interface defines the method for tokenizing input strings.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}

// Validator checks a token sequence before it is handed to the reducers.
type Validator interface {
	Validate(tokens []Token) error
}
