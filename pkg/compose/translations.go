package compose

import (
	i18n "github.com/goliatone/go-i18n"
)

// Translations returns the built-in message catalogs. Hosts can layer
// their own catalogs on top through the i18n store they hand the module.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", map[string]string{
			"notify.post.create":       "%s %s created a new %s in the topic %s located in the forum %s",
			"notify.post.update.self":  "%s %s edited their %s in the topic %s located in the forum %s",
			"notify.post.update.other": "%s %s edited the %s written by %s in the topic %s located in the forum %s",
			"notify.post.delete":       "%s Deleted post by user %s in the topic %s located in the forum %s",
			"notify.post.lock":         "%s The %s written by user %s in the topic titled %s in the %s forum has been locked",
			"notify.post.unlock":       "%s The %s written by user %s in the topic titled %s in the %s forum has been unlocked",
			"notify.post.approve":      "%s The %s written by user %s in the topic titled %s in the %s forum has been approved",

			"notify.topic.create":       "%s %s created a new topic titled %s in the %s forum",
			"notify.topic.update.self":  "%s %s edited their topic %s located in the forum %s",
			"notify.topic.update.other": "%s %s edited the topic %s written by %s located in the forum %s",
			"notify.topic.delete":       "%s Deleted the topic started by user %s titled '%s' containing %d posts in the forum %s",
			"notify.topic.lock":         "%s The topic titled %s in the %s forum started by user %s has been locked",
			"notify.topic.unlock":       "%s The topic titled %s in the %s forum started by user %s has been unlocked",
			"notify.topic.approve":      "%s The topic titled %s in the %s forum started by user %s has been approved",

			"notify.user.create":       "%s New user account created for %s",
			"notify.user.delete":       "%s Deleted account for user %s",
			"notify.user.delete.multi": "%s Deleted accounts for users %s",

			"notify.preview.prefix": "Preview: ",
			"notify.reason.prefix":  "Reason: ",
			"notify.word.post":      "post",
			"notify.word.and":       "and",
			"notify.word.conj":      ",",
			"notify.word.other":     "other",
			"notify.word.others":    "others",
			"placeholder.user":      "{user}",
			"placeholder.forum":     "{forum}",
			"placeholder.topic":     "{topic}",
		}),
		"de": newCatalog("de", map[string]string{
			"notify.post.create":       "%s %s hat eine %s auf das Thema %s im Forum %s geschrieben.",
			"notify.post.update.self":  "%s %s hat eine eigene %s auf das Thema %s im Forum %s bearbeitet.",
			"notify.post.update.other": "%s %s hat eine %s von %s auf das Thema %s im Forum %s bearbeitet.",
			"notify.post.delete":       "%s Eine Antwort von %s auf das Thema %s im Forum %s wurde gelöscht.",
			"notify.post.lock":         "%s Eine %s von %s auf das Thema %s im Forum %s wurde gesperrt.",
			"notify.post.unlock":       "%s Eine %s von %s auf das Thema %s im Forum %s wurde entsperrt.",
			"notify.post.approve":      "%s Eine %s von %s auf das Thema %s im Forum %s wurde freigeschaltet.",

			"notify.topic.create":       "%s %s hat das Thema %s im Forum %s erstellt.",
			"notify.topic.update.self":  "%s %s hat das eigene Thema %s im Forum %s bearbeitet.",
			"notify.topic.update.other": "%s %s hat das Thema %s von %s im Forum %s bearbeitet.",
			"notify.topic.delete":       "%s Das von %s gestartete Thema '%s' wurde zusammen mit %d Antwort(en) im Forum %s gelöscht.",
			"notify.topic.lock":         "%s Das Thema %s im Forum %s von %s wurde gesperrt.",
			"notify.topic.unlock":       "%s Das Thema %s im Forum %s von %s wurde entsperrt.",
			"notify.topic.approve":      "%s Das Thema %s im Forum %s von %s wurde freigeschaltet.",

			"notify.user.create":       "%s Es wurde ein neuer Account für %s erstellt.",
			"notify.user.delete":       "%s Der Account von %s wurde gelöscht.",
			"notify.user.delete.multi": "%s Die Accounts von %s wurden gelöscht.",

			"notify.preview.prefix": "Vorschau: ",
			"notify.reason.prefix":  "Grund: ",
			"notify.word.post":      "Antwort",
			"notify.word.and":       "und",
			"notify.word.conj":      ",",
			"notify.word.other":     "weiterer",
			"notify.word.others":    "weitere",
			"placeholder.user":      "{user}",
			"placeholder.forum":     "{forum}",
			"placeholder.topic":     "{topic}",
		}),
		"fr": newCatalog("fr", map[string]string{
			"notify.post.create":       "%s %s a publié un %s dans le sujet « %s » du forum « %s ».",
			"notify.post.update.self":  "%s %s a modifié son « %s dans le sujet « %s » du forum « %s ».",
			"notify.post.update.other": "%s %s a modifié le message « %s » publié par « %s » dans le sujet « %s » du forum « %s ».",
			"notify.post.delete":       "%s Message supprimé de l’auteur « %s » dans le sujet « %s » du forum « %s ».",
			"notify.post.lock":         "%s Le message « %s » publié par le membre « %s » dans le sujet intitulé « %s » du forum « %s » a été verrouillé.",
			"notify.post.unlock":       "%s Le message « %s » publié par le membre « %s » dans le sujet intitulé « %s » du forum « %s » a été déverrouillé.",
			"notify.post.approve":      "%s Le message « %s » publié par le membre « %s » dans le sujet intitulé « %s » du forum « %s » a été approuvé.",

			"notify.topic.create":       "%s %s a publié un nouveau sujet intitulé « %s » dans le forum « %s ».",
			"notify.topic.update.self":  "%s %s a modifié son sujet « %s » dans le forum « %s ».",
			"notify.topic.update.other": "%s %s a modifié le sujet « %s », dont l’auteur est « %s » dans le forum « %s ».",
			"notify.topic.delete":       "%s Sujet supprimé de l’auteur « %s », intitulé « %s », contenant %d messages dans le forum « %s ».",
			"notify.topic.lock":         "%s Le sujet intitulé « %s » dans le forum « %s » et dont l’auteur est « %s » a été verrouillé.",
			"notify.topic.unlock":       "%s Le sujet intitulé « %s » dans le forum « %s » et dont l’auteur est « %s » a été déverrouillé.",
			"notify.topic.approve":      "%s Le sujet intitulé « %s » dans le forum « %s » et dont l’auteur est « %s » a été approuvé.",

			"notify.user.create":       "%s Nouveau compte utilisateur créé pour le membre « %s ».",
			"notify.user.delete":       "%s Compte utilisateur supprimé pour le membre « %s ».",
			"notify.user.delete.multi": "%s Comptes utilisateurs supprimés pour les membres : « %s ».",

			"notify.preview.prefix": "Aperçu : ",
			"notify.reason.prefix":  "Raison : ",
			"notify.word.post":      "message",
			"notify.word.and":       "et",
			"notify.word.conj":      ",",
			"notify.word.other":     "autre",
			"notify.word.others":    "autres",
			"placeholder.user":      "{user}",
			"placeholder.forum":     "{forum}",
			"placeholder.topic":     "{topic}",
		}),
		"pt": newCatalog("pt", map[string]string{
			"notify.post.create":       "%s %s criou uma nova %s no tópico %s situado no fórum %s",
			"notify.post.update.self":  "%s %s editou a sua própria %s no tópico %s situado no fórum %s",
			"notify.post.update.other": "%s %s editou a %s criada por %s no tópico %s situado no fórum %s",
			"notify.post.delete":       "%s Mensagem Apagada. Tinha sido criada pelo utilizador %s no tópico %s situado no fórum %s",
			"notify.post.lock":         "%s A %s criada pelo utilizador %s no tópico %s no fórum %s foi bloqueada",
			"notify.post.unlock":       "%s A %s criada pelo utilizador %s no tópico %s no fórum %s foi desbloqueada",
			"notify.post.approve":      "%s A %s criada pelo utilizador %s no tópico %s no fórum %s foi aprovada",

			"notify.topic.create":       "%s %s criou um novo tópico intitulado %s no fórum %s",
			"notify.topic.update.self":  "%s %s editou o seu tópico %s situado no fórum %s",
			"notify.topic.update.other": "%s %s editou o tópico %s criado por %s situado no fórum %s",
			"notify.topic.delete":       "%s Tópico Apagado. Tinha sido criado pelo utilizador %s intitulado '%s' contendo %d mensagens no fórum %s",
			"notify.topic.lock":         "%s O tópico intitulado %s no fórum %s criado pelo utilizador %s foi bloqueado",
			"notify.topic.unlock":       "%s O tópico intitulado %s no fórum %s criado pelo utilizador %s foi desbloqueado",
			"notify.topic.approve":      "%s O tópico intitulado %s no fórum %s criado pelo utilizador %s foi aprovado",

			"notify.user.create":       "%s Nova conta de utilizador criada %s",
			"notify.user.delete":       "%s Conta apagada para o utilizador %s",
			"notify.user.delete.multi": "%s Contas apagadas para os utilizadores %s",

			"notify.preview.prefix": "Pré-visualização: ",
			"notify.reason.prefix":  "Razão: ",
			"notify.word.post":      "mensagem",
			"notify.word.and":       "e",
			"notify.word.conj":      ",",
			"notify.word.other":     "outro",
			"notify.word.others":    "outros",
			"placeholder.user":      "{utilizador}",
			"placeholder.forum":     "{fórum}",
			"placeholder.topic":     "{tópico}",
		}),
	}
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, template := range entries {
		msg := i18n.Message{}
		msg.SetContent(template)
		catalog.Messages[key] = msg
	}
	return catalog
}
