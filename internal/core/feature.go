package core

import "html/template"

// FeatureEntry is one highlighted skill area on the home page.
type FeatureEntry struct {
	Title       string
	Emoji       string
	Description template.HTML
}

var featureList = [...]FeatureEntry{
	{
		Title: "LLM Infrastructure",
		Emoji: "🧠",
		Description: "Building and optimizing inference platforms with vLLM, TensorRT-LLM, and SGLang. " +
			"Expertise in deploying and scaling large language models for production workloads.",
	},
	{
		Title: "Kubernetes & Cloud Native",
		Emoji: "☸️",
		Description: "Designing and managing scalable, resilient Kubernetes clusters. " +
			"Experienced in cloud infrastructure, container orchestration, and microservices architecture.",
	},
	{
		Title: "DevSecOps & Automation",
		Emoji: "🔒",
		Description: "Implementing secure CI/CD pipelines and infrastructure as code. " +
			"Focused on building systems that are reliable, fast, and secure by design.",
	},
}

// Features returns the home page feature list in display order.
// The returned slice is a copy.
func Features() []FeatureEntry {
	out := make([]FeatureEntry, len(featureList))
	copy(out, featureList[:])
	return out
}
