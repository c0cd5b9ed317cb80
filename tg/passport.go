package tg

import "github.com/prilive-com/tgtypes/schema"

// PassportData describes Telegram Passport data shared with the bot by the user.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data"`
	Credentials EncryptedCredentials       `json:"credentials"`
}

// PassportFile represents a file uploaded to Telegram Passport.
type PassportFile struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size"`
	FileDate     int64  `json:"file_date"`
}

// EncryptedPassportElement describes documents or other Telegram Passport
// elements shared with the bot by the user.
type EncryptedPassportElement struct {
	Type        string         `json:"type"`
	Data        *string        `json:"data,omitempty"`
	PhoneNumber *string        `json:"phone_number,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        string         `json:"hash"`
}

// EncryptedCredentials describes data required for decrypting and
// authenticating EncryptedPassportElement.
type EncryptedCredentials struct {
	Data   string `json:"data"`
	Hash   string `json:"hash"`
	Secret string `json:"secret"`
}

// --- PassportElementError Union ---

// PassportElementError describes an error in Telegram Passport data,
// sent back with setPassportDataErrors.
type PassportElementError interface {
	schema.Variant
	passportElementErrorTag()
}

var passportElementErrors = schema.NewFamily[PassportElementError]("PassportElementError", "source",
	func(value string, raw map[string]any) PassportElementError {
		return PassportElementErrorUnknown{Source: value, Raw: raw}
	},
	PassportElementErrorDataField{}, PassportElementErrorFrontSide{}, PassportElementErrorReverseSide{},
	PassportElementErrorSelfie{}, PassportElementErrorFile{}, PassportElementErrorFiles{},
	PassportElementErrorTranslationFile{}, PassportElementErrorTranslationFiles{},
	PassportElementErrorUnspecified{},
)

// PassportElementErrorDataField represents an error in a data field.
type PassportElementErrorDataField struct {
	Type      string `json:"type"`
	FieldName string `json:"field_name"`
	DataHash  string `json:"data_hash"`
	Message   string `json:"message"`
}

func (PassportElementErrorDataField) passportElementErrorTag() {}
func (PassportElementErrorDataField) Discriminator() string    { return "data" }

// PassportElementErrorFrontSide represents an error with the front side.
type PassportElementErrorFrontSide struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

func (PassportElementErrorFrontSide) passportElementErrorTag() {}
func (PassportElementErrorFrontSide) Discriminator() string    { return "front_side" }

// PassportElementErrorReverseSide represents an error with the reverse side.
type PassportElementErrorReverseSide struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

func (PassportElementErrorReverseSide) passportElementErrorTag() {}
func (PassportElementErrorReverseSide) Discriminator() string    { return "reverse_side" }

// PassportElementErrorSelfie represents an error with the selfie.
type PassportElementErrorSelfie struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

func (PassportElementErrorSelfie) passportElementErrorTag() {}
func (PassportElementErrorSelfie) Discriminator() string    { return "selfie" }

// PassportElementErrorFile represents an error with a document scan.
type PassportElementErrorFile struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

func (PassportElementErrorFile) passportElementErrorTag() {}
func (PassportElementErrorFile) Discriminator() string    { return "file" }

// PassportElementErrorFiles represents an error with a list of scans.
type PassportElementErrorFiles struct {
	Type       string   `json:"type"`
	FileHashes []string `json:"file_hashes"`
	Message    string   `json:"message"`
}

func (PassportElementErrorFiles) passportElementErrorTag() {}
func (PassportElementErrorFiles) Discriminator() string    { return "files" }

// PassportElementErrorTranslationFile represents an error with a translation.
type PassportElementErrorTranslationFile struct {
	Type     string `json:"type"`
	FileHash string `json:"file_hash"`
	Message  string `json:"message"`
}

func (PassportElementErrorTranslationFile) passportElementErrorTag() {}
func (PassportElementErrorTranslationFile) Discriminator() string    { return "translation_file" }

// PassportElementErrorTranslationFiles represents an error with translations.
type PassportElementErrorTranslationFiles struct {
	Type       string   `json:"type"`
	FileHashes []string `json:"file_hashes"`
	Message    string   `json:"message"`
}

func (PassportElementErrorTranslationFiles) passportElementErrorTag() {}
func (PassportElementErrorTranslationFiles) Discriminator() string    { return "translation_files" }

// PassportElementErrorUnspecified represents an error in an unspecified place.
type PassportElementErrorUnspecified struct {
	Type        string `json:"type"`
	ElementHash string `json:"element_hash"`
	Message     string `json:"message"`
}

func (PassportElementErrorUnspecified) passportElementErrorTag() {}
func (PassportElementErrorUnspecified) Discriminator() string    { return "unspecified" }

// PassportElementErrorUnknown is a fallback for future error sources.
type PassportElementErrorUnknown struct {
	Source string
	Raw    map[string]any
}

func (PassportElementErrorUnknown) passportElementErrorTag()    {}
func (e PassportElementErrorUnknown) Discriminator() string     { return e.Source }
func (e PassportElementErrorUnknown) RawFields() map[string]any { return e.Raw }
