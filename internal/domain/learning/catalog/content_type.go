package catalog

import (
	"fmt"
	"strings"
)

type ContentType string

const (
	ContentTypeAlgorithm  ContentType = "algorithm"
	ContentTypeAWSService ContentType = "aws_service"
	ContentTypeConcept    ContentType = "concept"
	ContentTypeFramework  ContentType = "framework"
)

// AllContentTypes lists every content type in the order the catalog sorts
// them (plain string order on the stored value).
func AllContentTypes() []ContentType {
	return []ContentType{ContentTypeAlgorithm, ContentTypeAWSService, ContentTypeConcept, ContentTypeFramework}
}

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeAlgorithm, ContentTypeAWSService, ContentTypeConcept, ContentTypeFramework:
		return true
	default:
		return false
	}
}

func (t ContentType) String() string { return string(t) }

func ParseContentType(raw string) (ContentType, error) {
	t := ContentType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown content type %q", raw)
	}
	return t, nil
}
