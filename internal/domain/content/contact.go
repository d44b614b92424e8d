package content

import "github.com/frizeriacentrala/site-api/internal/models"

// ContactInfo is the contact block a location page renders. Every field is
// already resolved: location override if present, else the site default.
// Fields empty in both places stay empty and are omitted from JSON.
type ContactInfo struct {
	Phone          string             `json:"phone,omitempty"`
	Email          string             `json:"email,omitempty"`
	AppointmentURL string             `json:"appointment_url,omitempty"`
	LocationURL    string             `json:"location_url,omitempty"`
	SocialLinks    models.SocialLinks `json:"social_links,omitempty"`
	Timetable      models.Timetable   `json:"timetable,omitempty"`
}

// ResolveContact applies the per-field fallback from a shop location to
// the site-wide defaults.
func ResolveContact(loc *models.ShopLocation, settings *models.SiteSettings) ContactInfo {
	info := ContactInfo{
		Phone:          settings.Phone,
		Email:          settings.Email,
		AppointmentURL: settings.AppointmentURL,
		LocationURL:    settings.LocationURL,
		SocialLinks:    settings.SocialLinks,
		Timetable:      settings.Timetable,
	}

	if loc == nil {
		return info
	}

	if loc.Phone != "" {
		info.Phone = loc.Phone
	}
	if loc.Email != "" {
		info.Email = loc.Email
	}
	if loc.AppointmentURL != "" {
		info.AppointmentURL = loc.AppointmentURL
	}
	if loc.LocationURL != "" {
		info.LocationURL = loc.LocationURL
	}
	if len(loc.SocialLinks) > 0 {
		info.SocialLinks = loc.SocialLinks
	}
	if len(loc.Timetable) > 0 {
		info.Timetable = loc.Timetable
	}

	return info
}
