package weather

import (
	"fmt"

	"github.com/ndot/ndot-clock/internal/model"
)

// codeDescriptions maps WMO weather interpretation codes to human text.
var codeDescriptions = map[string]map[int]string{
	model.LanguageEnglish: {
		0:  "Clear sky",
		1:  "Mainly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Fog",
		48: "Depositing rime fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Dense drizzle",
		56: "Light freezing drizzle",
		57: "Dense freezing drizzle",
		61: "Slight rain",
		63: "Moderate rain",
		65: "Heavy rain",
		66: "Light freezing rain",
		67: "Heavy freezing rain",
		71: "Slight snowfall",
		73: "Moderate snowfall",
		75: "Heavy snowfall",
		77: "Snow grains",
		80: "Slight rain showers",
		81: "Moderate rain showers",
		82: "Violent rain showers",
		85: "Slight snow showers",
		86: "Heavy snow showers",
		95: "Thunderstorm",
		96: "Thunderstorm with slight hail",
		99: "Thunderstorm with heavy hail",
	},
	model.LanguageRussian: {
		0:  "Ясно",
		1:  "Преимущественно ясно",
		2:  "Переменная облачность",
		3:  "Пасмурно",
		45: "Туман",
		48: "Изморозь",
		51: "Лёгкая морось",
		53: "Умеренная морось",
		55: "Сильная морось",
		56: "Лёгкая замерзающая морось",
		57: "Сильная замерзающая морось",
		61: "Небольшой дождь",
		63: "Умеренный дождь",
		65: "Сильный дождь",
		66: "Лёгкий ледяной дождь",
		67: "Сильный ледяной дождь",
		71: "Небольшой снег",
		73: "Умеренный снег",
		75: "Сильный снег",
		77: "Снежные зёрна",
		80: "Небольшой ливень",
		81: "Умеренный ливень",
		82: "Сильный ливень",
		85: "Небольшой снегопад",
		86: "Сильный снегопад",
		95: "Гроза",
		96: "Гроза с небольшим градом",
		99: "Гроза с сильным градом",
	},
	model.LanguagePortuguese: {
		0:  "Céu limpo",
		1:  "Predominantemente limpo",
		2:  "Parcialmente nublado",
		3:  "Encoberto",
		45: "Nevoeiro",
		48: "Nevoeiro com geada",
		51: "Chuvisco leve",
		53: "Chuvisco moderado",
		55: "Chuvisco intenso",
		56: "Chuvisco congelante leve",
		57: "Chuvisco congelante intenso",
		61: "Chuva fraca",
		63: "Chuva moderada",
		65: "Chuva forte",
		66: "Chuva congelante fraca",
		67: "Chuva congelante forte",
		71: "Neve fraca",
		73: "Neve moderada",
		75: "Neve forte",
		77: "Grãos de neve",
		80: "Aguaceiros fracos",
		81: "Aguaceiros moderados",
		82: "Aguaceiros violentos",
		85: "Aguaceiros de neve fracos",
		86: "Aguaceiros de neve fortes",
		95: "Trovoada",
		96: "Trovoada com granizo fraco",
		99: "Trovoada com granizo forte",
	},
}

// Describe returns the description for a WMO weather code in the given
// language, falling back to English and then to the raw code.
func Describe(code int, lang string) string {
	if texts, ok := codeDescriptions[lang]; ok {
		if text, ok := texts[code]; ok {
			return text
		}
	}
	if text, ok := codeDescriptions[model.LanguageEnglish][code]; ok {
		return text
	}
	return fmt.Sprintf("Code %d", code)
}

// Icon returns a glyph for a WMO weather code. Clear and partly cloudy
// conditions pick a day or night variant.
func Icon(code int, isDay bool) string {
	switch {
	case code == 0 || code == 1:
		if isDay {
			return "☀"
		}
		return "🌙"
	case code == 2:
		if isDay {
			return "⛅"
		}
		return "☁"
	case code == 3:
		return "☁"
	case code == 45 || code == 48:
		return "🌫"
	case code >= 51 && code <= 57:
		return "🌦"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "🌧"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "🌨"
	case code >= 95 && code <= 99:
		return "⛈"
	default:
		return "☁"
	}
}
