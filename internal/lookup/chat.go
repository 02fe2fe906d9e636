package lookup

import "strings"

const (
	emergencyReply = "🚨 If you're experiencing a medical emergency, please call emergency services immediately. " +
		"This AI assistant cannot provide emergency medical care."
	symptomReply = "I can help you understand symptoms, but I cannot provide a diagnosis. " +
		"Please consult with a healthcare provider for proper medical evaluation."
	medicationReply = "I can provide general information about medications, but always consult " +
		"your doctor or pharmacist for specific advice about your medications."
	defaultReply = "Thank you for your question. I'm here to provide general health information. " +
		"For specific medical advice, diagnosis, or treatment, please consult a qualified healthcare provider."
)

// chatRoutes are evaluated in priority order; emergencies come first.
var chatRoutes = []struct {
	keywords []string
	reply    string
}{
	{keywords: []string{"emergency", "urgent", "severe", "critical", "immediate"}, reply: emergencyReply},
	{keywords: []string{"symptom", "pain", "fever", "headache"}, reply: symptomReply},
	{keywords: []string{"medicine", "medication", "drug", "pill"}, reply: medicationReply},
}

// ChatReply routes a message to a canned reply by keyword containment.
func ChatReply(message string) string {
	m := strings.ToLower(message)
	for _, route := range chatRoutes {
		for _, kw := range route.keywords {
			if strings.Contains(m, kw) {
				return route.reply
			}
		}
	}
	return defaultReply
}
