package scope

import "github.com/MKhiriev/go-serble-keeper/models"

// DefaultTable is the scope table of the Serble API. Append only.
var DefaultTable = []models.ScopeDefinition{
	{
		ID:          "full_access",
		DisplayName: "Full Account Access",
		Description: "Allows full access to the account.",
	},
	{
		ID:          "file_host",
		DisplayName: "File Host",
		Description: "Allows access the file host.",
	},
	{
		ID:          "user_info",
		DisplayName: "Account Information",
		Description: "Allows access to the account's information (Eg. Username, Email).",
	},
	{
		ID:          "apps_control",
		DisplayName: "Control Of Authorized Applications",
		Description: "Allows control over authorized applications.",
	},
	{
		ID:          "payment_info",
		DisplayName: "Payment Information",
		Description: "Allows access to a user's list of purchased products and allows them to manage their subscriptions, " +
			"including viewing the last 4 digits of their credit card and viewing purchase history.",
	},
	{
		ID:          "manage_account",
		DisplayName: "Account Management",
		Description: "Grants the ability to control the user's account, including changing their email, and username. " +
			"Only you can change your password.",
	},
	{
		ID:          "manage_apps",
		DisplayName: "OAuth App Management",
		Description: "Allows management over all of your OAuth application, this does not allow the authorization of apps.",
	},
}
