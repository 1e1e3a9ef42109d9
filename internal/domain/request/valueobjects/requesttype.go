package valueobjects

import "fmt"

// RequestType is the category a client assigns to a support request.
type RequestType string

const (
	TypeTechnicalIssue  RequestType = "Technical Issue"
	TypeFeatureRequest  RequestType = "Feature Request"
	TypeBillingQuestion RequestType = "Billing Question"
	TypeGeneralInquiry  RequestType = "General Inquiry"
	TypeOther           RequestType = "Other"
)

var validRequestTypes = map[RequestType]bool{
	TypeTechnicalIssue:  true,
	TypeFeatureRequest:  true,
	TypeBillingQuestion: true,
	TypeGeneralInquiry:  true,
	TypeOther:           true,
}

func (rt RequestType) String() string {
	return string(rt)
}

func (rt RequestType) IsValid() bool {
	return validRequestTypes[rt]
}

func NewRequestType(s string) (RequestType, error) {
	rt := RequestType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid request type: %s", s)
	}
	return rt, nil
}
