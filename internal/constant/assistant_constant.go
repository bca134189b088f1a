package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// SystemPrompt seeds every session as turn zero.
	SystemPrompt = `Tu es FlorIA, assistant spécialisé plantes.
Règles strictes:
- Réponds d'abord à la question posée.
- Ne répète pas un questionnaire à chaque message.
- Pose des questions UNIQUEMENT si nécessaire, max 3, et seulement sur les infos manquantes.
- Si l'utilisateur dit juste bonjour, réponds simplement.
- Si des extraits de sources sont fournis, base-toi dessus en priorité.
- Si l'info n'est pas dans les sources, dis-le et propose une solution prudente.
Style: clair, actionnable, listes courtes.`

	// GreetingReply short-circuits bare greetings without touching retrieval
	// or the model.
	GreetingReply = "Bonjour. Dis-moi quelle plante tu as et ce que tu veux (entretien ou problème), et je t'aide."

	// SourceContextHeader frames retrieved extracts injected as a system
	// turn right before the user turn.
	SourceContextHeader = "EXTRAITS DE SOURCES FIABLES (à utiliser en priorité). " +
		"Si une info n'est pas dans ces extraits, dis: 'Je ne l'ai pas trouvé dans les sources'.\n\n"

	// KnownSlotsHeader frames the known-facts system turn that suppresses
	// redundant questioning.
	KnownSlotsHeader = "INFOS CONNUES (ne pas redemander): "

	// MissingQuestionsHeader introduces the clarifying-question block
	// appended to a model answer.
	MissingQuestionsHeader = "\n\nPour affiner:\n"

	// FallbackReply is the deterministic answer used when the model backend
	// is unreachable. It restates the four canonical data-gathering
	// questions.
	FallbackReply = `Je n'arrive pas à joindre le modèle pour le moment, mais je peux déjà t'aider avec quelques infos.

Dis-moi:
- Quelle est la plante (nom) ?
- Elle est en lumière directe, indirecte ou à l'ombre ?
- À quelle fréquence l'arroses-tu ?
- Quels symptômes observes-tu (feuilles jaunes, taches, pourriture...) ?`

	// FallbackSourcesHeader introduces raw retrieved context inside the
	// fallback reply when retrieval did succeed.
	FallbackSourcesHeader = "\n\nEn attendant, voici ce que disent les sources:\n\n"

	// RetrievalFailedMarker is recorded in tools_used when retrieval was
	// attempted but produced nothing usable.
	RetrievalFailedMarker = "fetch_plant_sources_failed"

	// MaxContextChars caps the retrieved summary injected as model context.
	MaxContextChars = 1000
)
