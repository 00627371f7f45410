package nmea

// TXT is a free-text diagnostic message from the receiver.
//
// Fields:
//
//	0: total number of sentences
//	1: sentence number
//	2: message type (00, 01, 02, 07)
//	3+: text; any further commas are part of the text
type TXT struct {
	Source    Source      `json:"source" yaml:"source"`
	Sentences uint8       `json:"sentences" yaml:"sentences"`
	Number    uint8       `json:"number" yaml:"number"`
	Type      MessageType `json:"type" yaml:"type"`
	Text      Text        `json:"text" yaml:"text"`
}

// ParseTXT assembles a TXT record from f. It returns a nil record and nil
// error when the sentence count, sentence number or message type is empty
// or missing.
func ParseTXT(src Source, f *Fields) (*TXT, error) {
	sentences, sentencesOK, err := ParseUint8(f.Next())
	if err != nil {
		return nil, err
	}
	number, numberOK, err := ParseUint8(f.Next())
	if err != nil {
		return nil, err
	}
	kind, kindOK, err := ParseMessageType(f.Next())
	if err != nil {
		return nil, err
	}

	var text Text
	for part, ok := f.Next(); ok; part, ok = f.Next() {
		if err := text.Append(part); err != nil {
			return nil, err
		}
		if f.More() {
			if err := text.AppendByte(Delimiter); err != nil {
				return nil, err
			}
		}
	}

	if !sentencesOK || !numberOK || !kindOK {
		return nil, nil
	}
	return &TXT{
		Source:    src,
		Sentences: sentences,
		Number:    number,
		Type:      kind,
		Text:      text,
	}, nil
}
