package services

import (
	"errors"
	"math"

	"github.com/anjiri1684/cyber_evolve/models"
)

const falsePositivePenalty = 10

var ErrUnknownPhishingEmail = errors.New("unknown phishing email")

var phishingThreats = []models.PhishingThreat{
	{ID: "suspicious_sender", Label: "Suspicious sender email address"},
	{ID: "urgency", Label: "Creates false urgency or panic"},
	{ID: "suspicious_link", Label: "Suspicious or misspelled link"},
	{ID: "threat", Label: "Threatens account closure/suspension"},
	{ID: "authority", Label: "Impersonates authority figure"},
	{ID: "unusual_request", Label: "Unusual financial request"},
	{ID: "no_verification", Label: "No way to verify independently"},
	{ID: "fake_attachment", Label: "Unexpected attachment request"},
}

var phishingEmails = []models.PhishingEmail{
	{
		ID:      "email1",
		From:    "noreply@paypa1-secure.com",
		Subject: "URGENT: Your Account Has Been Suspended",
		Body: `Dear Valued Customer,

We have detected unusual activity on your PayPal account. Your account has been temporarily suspended for your protection.

To restore full access, please verify your information immediately by clicking the link below:

http://paypal-secure-verification.tk/verify

If you do not verify within 24 hours, your account will be permanently closed.

Sincerely,
PayPal Security Team`,
		Category: "Account Verification Scam",
		Threats:  []string{"suspicious_sender", "urgency", "suspicious_link", "threat"},
	},
	{
		ID:      "email2",
		From:    "ceo@company.com",
		Subject: "Re: Urgent Wire Transfer Needed",
		Body: `Hi,

I'm currently in a meeting with investors and need you to process an urgent wire transfer immediately.

Transfer $15,000 to this account:
Bank: International Trust Bank
Account: 98743210987
Swift: ITBXYZ123

This is time-sensitive - please handle this ASAP and confirm once done.

Thanks,
John Smith
CEO`,
		Category: "CEO Fraud",
		Threats:  []string{"urgency", "authority", "unusual_request", "no_verification"},
	},
	{
		ID:      "email3",
		From:    "delivery@ups-tracking.net",
		Subject: "Package Delivery Failed - Action Required",
		Body: `Hello,

We attempted to deliver your package today but were unable to complete the delivery.

Tracking Number: UPS827463891

To reschedule delivery, please download and complete the attached form:

[Download Delivery Form]

Please note: This link expires in 48 hours.

UPS Customer Service`,
		Category: "Delivery Scam",
		Threats:  []string{"suspicious_sender", "fake_attachment", "urgency", "suspicious_link"},
	},
}

// PhishingScenarios returns copies of the simulator emails and the indicator
// list. The answer keys stay server side.
func PhishingScenarios() models.PhishingScenarios {
	emails := make([]models.PhishingEmail, len(phishingEmails))
	copy(emails, phishingEmails)
	threats := make([]models.PhishingThreat, len(phishingThreats))
	copy(threats, phishingThreats)
	return models.PhishingScenarios{Emails: emails, Threats: threats}
}

// PhishingThreatIDs lists every indicator id a reader may select.
func PhishingThreatIDs() []string {
	ids := make([]string, 0, len(phishingThreats))
	for _, t := range phishingThreats {
		ids = append(ids, t.ID)
	}
	return ids
}

// CheckPhishing scores the indicators selected for emailID. Duplicate
// selections count once.
func CheckPhishing(emailID string, selected []string) (models.PhishingResult, error) {
	for _, email := range phishingEmails {
		if email.ID == emailID {
			return ScorePhishing(email, selected), nil
		}
	}
	return models.PhishingResult{}, ErrUnknownPhishingEmail
}

// ScorePhishing awards detected/len(threats)*100, minus 10 per false
// positive, rounded and floored at zero.
func ScorePhishing(email models.PhishingEmail, selected []string) models.PhishingResult {
	correct := make(map[string]bool, len(email.Threats))
	for _, id := range email.Threats {
		correct[id] = true
	}

	result := models.PhishingResult{
		EmailID:        email.ID,
		Category:       email.Category,
		Detected:       []string{},
		Missed:         []string{},
		FalsePositives: []string{},
	}

	picked := make(map[string]bool, len(selected))
	for _, id := range selected {
		if picked[id] {
			continue
		}
		picked[id] = true
		if correct[id] {
			result.Detected = append(result.Detected, id)
		} else {
			result.FalsePositives = append(result.FalsePositives, id)
		}
	}
	for _, id := range email.Threats {
		if !picked[id] {
			result.Missed = append(result.Missed, id)
		}
	}

	if len(email.Threats) == 0 {
		return result
	}
	raw := float64(len(result.Detected))/float64(len(email.Threats))*100 -
		float64(len(result.FalsePositives)*falsePositivePenalty)
	result.Score = int(math.Max(0, math.Round(raw)))
	return result
}
