package shared

// Canonical permission identifiers. Handlers reference these constants and
// never inline permission literals, so a renamed capability changes in one
// place.
const (
	PermVendorView         = "vendor_view"
	PermVendorEdit         = "vendor_edit"
	PermFinancialView      = "financial_view"
	PermFinancialEdit      = "financial_edit"
	PermPaymentView        = "payment_view"
	PermPaymentEdit        = "payment_edit"
	PermEditCompanyDetails = "edit_company_details"
)

// AllPermissions lists every capability known to the platform.
func AllPermissions() []string {
	return []string{
		PermVendorView,
		PermVendorEdit,
		PermFinancialView,
		PermFinancialEdit,
		PermPaymentView,
		PermPaymentEdit,
		PermEditCompanyDetails,
	}
}
