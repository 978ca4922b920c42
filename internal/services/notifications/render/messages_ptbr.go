package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, keyClientLink, "Link do Cliente Steam")
	message.SetString(lang, keyStarts, "Início")
	message.SetString(lang, keyEnds, "Fim")
	message.SetString(lang, keyPrice, "Preço")
	message.SetString(lang, keyDevelopers, "Desenvolvedores")
	message.SetString(lang, keyPublishers, "Distribuidoras")
	message.SetString(lang, keyPlayerCount, "Jogadores Agora")
	message.SetString(lang, keyReleaseDate, "Data de Lançamento")
	message.SetString(lang, keyDetails, "Detalhes")
	message.SetString(lang, keyCategories, "Categorias")
	message.SetString(lang, keyGenres, "Gêneros")
	message.SetString(lang, keyPlatforms, "Plataformas")
	message.SetString(lang, keyDeck, "Compatibilidade com Steam Deck")
	message.SetString(lang, keyTags, "Marcadores")
	message.SetString(lang, keyType, "Tipo")
	message.SetString(lang, keyFileSize, "Tamanho do Arquivo")
	message.SetString(lang, keyAchievements, "Conquistas")
	message.SetString(lang, keyRecommendations, "Recomendações")
	message.SetString(lang, keyUnknown, "Desconhecido")
	message.SetString(lang, keyNone, "Nenhum")
	message.SetString(lang, keyNotAvailable, "N/D")
	message.SetString(lang, keyFree, "Gratuito")
	message.SetString(lang, keyFreeToKeep, "Grátis Para Sempre")
	message.SetString(lang, keyFreeWeekend, "Fim de Semana Gratuito")
	message.SetString(lang, keyViewWebsite, "Ver Site")
	message.SetString(lang, keyDeckVerified, "Verificado")
	message.SetString(lang, keyDeckPlayable, "Jogável")
	message.SetString(lang, keyDeckUnsupported, "Incompatível")
	message.SetString(lang, keyDeckUnknown, "Desconhecido")
}
