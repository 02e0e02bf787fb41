package ui

import (
	"fmt"
	"time"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyView               = "view"
	KeyQuit               = "quit"
	KeyFullscreen         = "fullscreen"
	KeyLanguage           = "language"
	KeyEditSlides         = "edit_slides"
	KeyDone               = "done"
	KeyAddSlide           = "add_slide"
	KeyDeleteSlide        = "delete_slide"
	KeyConfirmDeleteSlide = "confirm_delete_slide"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyDelete             = "delete"
	KeySlideClock         = "slide_clock"
	KeySlideWeather       = "slide_weather"
	KeySlideCustom        = "slide_custom"
	KeySlideYouTube       = "slide_youtube"
	KeySlideHomeAssistant = "slide_home_assistant"
	KeyTitle              = "title"
	KeyURL                = "url"
	KeyEnterYouTubeURL    = "enter_youtube_url"
	KeyEnterWebURL        = "enter_web_url"
	KeyInvalidURL         = "invalid_url"
	KeyDisplaySettings    = "display_settings"
	KeyBrightness         = "brightness"
	KeyClockColor         = "clock_color"
	KeyBackgroundColor    = "background_color"
	KeyTimeFormat24       = "time_format_24"
	KeyShowSeconds        = "show_seconds"
	KeyShowWind           = "show_wind"
	KeyLocationAuto       = "location_auto"
	KeyCity               = "city"
	KeySearch             = "search"
	KeyWeatherUnavailable = "weather_unavailable"
	KeyUpdatedAt          = "updated_at"
	KeySearchFailed       = "search_failed"
	KeySaveFailed         = "save_failed"
	KeySettingsSaved      = "settings_saved"
	KeyOpenInBrowser      = "open_in_browser"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// FormatDate renders the date line under the clock in the current language.
func (l *Localization) FormatDate(t time.Time) string {
	weekdays, ok := weekdayNames[l.currentLanguage]
	if !ok {
		weekdays = weekdayNames["en"]
	}
	months, ok := monthNames[l.currentLanguage]
	if !ok {
		months = monthNames["en"]
	}

	weekday := weekdays[int(t.Weekday())]
	month := months[int(t.Month())-1]
	if l.currentLanguage == "en" {
		return fmt.Sprintf("%s, %s %d, %d", weekday, month, t.Day(), t.Year())
	}
	return fmt.Sprintf("%s, %d %s %d", weekday, t.Day(), month, t.Year())
}

// weekdayNames is indexed by time.Weekday (Sunday first).
var weekdayNames = map[string][7]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"ru": {"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"},
	"pt": {"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado"},
}

// monthNames is indexed by month - 1. Russian uses the genitive forms that
// follow a day number.
var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"ru": {"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
	"pt": {"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "NDot Clock",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyView:               "View",
		KeyQuit:               "Quit",
		KeyFullscreen:         "Fullscreen",
		KeyLanguage:           "Language",
		KeyEditSlides:         "Edit slides",
		KeyDone:               "Done",
		KeyAddSlide:           "Add slide",
		KeyDeleteSlide:        "Delete slide",
		KeyConfirmDeleteSlide: "Delete this slide?",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyDelete:             "Delete",
		KeySlideClock:         "Clock",
		KeySlideWeather:       "Weather",
		KeySlideCustom:        "Web page",
		KeySlideYouTube:       "YouTube",
		KeySlideHomeAssistant: "Home Assistant",
		KeyTitle:              "Title",
		KeyURL:                "URL",
		KeyEnterYouTubeURL:    "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyEnterWebURL:        "Enter page URL (https://...)",
		KeyInvalidURL:         "Invalid URL",
		KeyDisplaySettings:    "Display",
		KeyBrightness:         "Brightness",
		KeyClockColor:         "Clock color",
		KeyBackgroundColor:    "Background color",
		KeyTimeFormat24:       "24-hour time",
		KeyShowSeconds:        "Show seconds",
		KeyShowWind:           "Show wind",
		KeyLocationAuto:       "Detect location automatically",
		KeyCity:               "City",
		KeySearch:             "Search",
		KeyWeatherUnavailable: "Weather unavailable",
		KeyUpdatedAt:          "Updated %s",
		KeySearchFailed:       "City search failed",
		KeySaveFailed:         "Could not save slides",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyOpenInBrowser:      "Open in browser",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "NDot Часы",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyView:               "Вид",
		KeyQuit:               "Выход",
		KeyFullscreen:         "Во весь экран",
		KeyLanguage:           "Язык",
		KeyEditSlides:         "Редактировать слайды",
		KeyDone:               "Готово",
		KeyAddSlide:           "Добавить слайд",
		KeyDeleteSlide:        "Удалить слайд",
		KeyConfirmDeleteSlide: "Удалить этот слайд?",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyDelete:             "Удалить",
		KeySlideClock:         "Часы",
		KeySlideWeather:       "Погода",
		KeySlideCustom:        "Веб-страница",
		KeySlideYouTube:       "YouTube",
		KeySlideHomeAssistant: "Home Assistant",
		KeyTitle:              "Название",
		KeyURL:                "URL",
		KeyEnterYouTubeURL:    "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyEnterWebURL:        "Введите адрес страницы (https://...)",
		KeyInvalidURL:         "Неверный URL",
		KeyDisplaySettings:    "Экран",
		KeyBrightness:         "Яркость",
		KeyClockColor:         "Цвет часов",
		KeyBackgroundColor:    "Цвет фона",
		KeyTimeFormat24:       "24-часовой формат",
		KeyShowSeconds:        "Показывать секунды",
		KeyShowWind:           "Показывать ветер",
		KeyLocationAuto:       "Определять местоположение автоматически",
		KeyCity:               "Город",
		KeySearch:             "Поиск",
		KeyWeatherUnavailable: "Погода недоступна",
		KeyUpdatedAt:          "Обновлено %s",
		KeySearchFailed:       "Не удалось найти город",
		KeySaveFailed:         "Не удалось сохранить слайды",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyOpenInBrowser:      "Открыть в браузере",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "NDot Relógio",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyView:               "Exibir",
		KeyQuit:               "Sair",
		KeyFullscreen:         "Tela cheia",
		KeyLanguage:           "Idioma",
		KeyEditSlides:         "Editar slides",
		KeyDone:               "Concluído",
		KeyAddSlide:           "Adicionar slide",
		KeyDeleteSlide:        "Excluir slide",
		KeyConfirmDeleteSlide: "Excluir este slide?",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyDelete:             "Excluir",
		KeySlideClock:         "Relógio",
		KeySlideWeather:       "Tempo",
		KeySlideCustom:        "Página web",
		KeySlideYouTube:       "YouTube",
		KeySlideHomeAssistant: "Home Assistant",
		KeyTitle:              "Título",
		KeyURL:                "URL",
		KeyEnterYouTubeURL:    "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyEnterWebURL:        "Digite o URL da página (https://...)",
		KeyInvalidURL:         "URL inválida",
		KeyDisplaySettings:    "Tela",
		KeyBrightness:         "Brilho",
		KeyClockColor:         "Cor do relógio",
		KeyBackgroundColor:    "Cor de fundo",
		KeyTimeFormat24:       "Formato 24 horas",
		KeyShowSeconds:        "Mostrar segundos",
		KeyShowWind:           "Mostrar vento",
		KeyLocationAuto:       "Detectar localização automaticamente",
		KeyCity:               "Cidade",
		KeySearch:             "Pesquisar",
		KeyWeatherUnavailable: "Tempo indisponível",
		KeyUpdatedAt:          "Atualizado %s",
		KeySearchFailed:       "Falha na pesquisa da cidade",
		KeySaveFailed:         "Não foi possível salvar os slides",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyOpenInBrowser:      "Abrir no navegador",
	}
}

// SlideKindKey maps a slide kind string to its localization key.
func SlideKindKey(kind string) string {
	switch kind {
	case "clock":
		return KeySlideClock
	case "weather":
		return KeySlideWeather
	case "custom":
		return KeySlideCustom
	case "youtube":
		return KeySlideYouTube
	case "home_assistant":
		return KeySlideHomeAssistant
	default:
		return kind
	}
}
