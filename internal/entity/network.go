package entity

// NetworkDescriptor describes a payment network the gateway knows about.
type NetworkDescriptor struct {
	CryptoCode       string
	Name             string
	SupportLightning bool
}
