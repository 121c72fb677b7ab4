package paymentaccount

import "strings"

const (
	F2FPaymentMethodID = "F2F"

	f2fAccountName = "Face to Face Payment Account"
	f2fCity        = "Anytown"
	f2fContact     = "Me"
)

var formComments = []string{
	"Do not manually edit the paymentMethodId field.",
	"Edit the salt field only if you are recreating a payment account on a new installation and wish to preserve the account age.",
}

// Form is the json payment account form accepted by the trading daemon. Field order is the file order.
type Form struct {
	Comments        []string `json:"_COMMENTS_"`
	PaymentMethodID string   `json:"paymentMethodId"`
	AccountName     string   `json:"accountName"`
	City            string   `json:"city"`
	Contact         string   `json:"contact"`
	Country         string   `json:"country"`
	ExtraInfo       string   `json:"extraInfo"`
	Salt            string   `json:"salt"`
}

func NewF2FForm(countryCode string) Form {
	comments := make([]string, len(formComments))
	copy(comments, formComments)

	return Form{
		Comments:        comments,
		PaymentMethodID: F2FPaymentMethodID,
		AccountName:     f2fAccountName,
		City:            f2fCity,
		Contact:         f2fContact,
		Country:         strings.ToUpper(countryCode),
	}
}
