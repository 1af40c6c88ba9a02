package services

import (
	"github.com/lexibridge/lexibridge-backend/internal/domain/screening"
)

// DefaultLanguage is used whenever a requested locale has no catalog entry.
const DefaultLanguage = "en"

type GameContent struct {
	Passage string `json:"passage"`
}

type GameInfo struct {
	GameNumber   int          `json:"gameNumber"`
	GameType     string       `json:"gameType"`
	Title        string       `json:"title"`
	Instructions string       `json:"instructions"`
	Duration     int          `json:"duration"`
	Content      *GameContent `json:"content,omitempty"`
}

type gameMeta struct {
	title        string
	instructions string
	duration     int
}

var gameTypes = map[int]string{
	1: "eye_tracking_reading",
	2: "speech_fluency",
	3: "handwriting",
	4: "pattern_recognition",
	5: "response_time",
}

var gameInstructions = map[string]map[int]gameMeta{
	"en": {
		1: {
			title:        "Reading Task",
			instructions: "Ensure your face is well-lit and camera is enabled. Follow the red dot to calibrate, then read the text naturally.",
			duration:     60,
		},
		2: {
			title:        "Speech Fluency",
			instructions: "Read the sentences shown on screen clearly and at your normal pace.",
			duration:     30,
		},
		3: {
			title:        "Handwriting Task",
			instructions: "Copy the letters and words shown on screen using the drawing area.",
			duration:     60,
		},
		4: {
			title:        "Pattern Recognition",
			instructions: "Look at each pattern and select the correct answer.",
			duration:     120,
		},
		5: {
			title:        "Quick Response",
			instructions: "Click the button as fast as you can when you see the colored circle.",
			duration:     60,
		},
	},
	"hi": {
		1: {
			title:        "पढ़ने का कार्य",
			instructions: "सुनिश्चित करें कि आपका चेहरा अच्छी तरह से प्रकाशित है और कैमरा सक्षम है। कैलिब्रेट करने के लिए लाल बिंदु का पालन करें, फिर पाठ को स्वाभाविक रूप से पढ़ें।",
			duration:     60,
		},
		2: {
			title:        "भाषण प्रवाह",
			instructions: "स्क्रीन पर दिखाए गए वाक्यों को स्पष्ट रूप से और अपनी सामान्य गति से पढ़ें।",
			duration:     30,
		},
		3: {
			title:        "हस्तलेखन कार्य",
			instructions: "ड्राइंग एरिया का उपयोग करके स्क्रीन पर दिखाए गए अक्षरों और शब्दों को कॉपी करें।",
			duration:     60,
		},
		4: {
			title:        "पैटर्न पहचान",
			instructions: "प्रत्येक पैटर्न को देखें और सही उत्तर चुनें।",
			duration:     120,
		},
		5: {
			title:        "त्वरित प्रतिक्रिया",
			instructions: "जब आप रंगीन वृत्त देखें तो जितनी जल्दी हो सके बटन पर क्लिक करें।",
			duration:     60,
		},
	},
}

var readingPassages = map[string]string{
	"en": `The quick brown fox jumps over the lazy dog. This sentence contains every letter of the alphabet.
    Reading is a wonderful skill that opens doors to new worlds. Every day, we learn something new through reading.
    Children who read regularly develop better vocabulary and comprehension skills. Books are treasures of knowledge.`,
	"hi": `एक तेज भूरी लोमड़ी आलसी कुत्ते के ऊपर कूदती है। पढ़ना एक अद्भुत कौशल है जो नई दुनिया के दरवाजे खोलता है।
    हर दिन, हम पढ़ने के माध्यम से कुछ नया सीखते हैं। जो बच्चे नियमित रूप से पढ़ते हैं उनमें बेहतर शब्दावली और समझ कौशल विकसित होता है।`,
}

// GameType maps a game number to its fixed type; ok is false outside 1..5.
func GameType(gameNumber int) (string, bool) {
	t, ok := gameTypes[gameNumber]
	return t, ok
}

// GameInfoFor returns the catalog entry for a game in the given language,
// falling back to the default language when the locale has no entry. The
// reading passage is attached for game 1 only. ok is false only for a game
// number outside 1..5.
func GameInfoFor(language string, gameNumber int) (GameInfo, bool) {
	gameType, ok := gameTypes[gameNumber]
	if !ok {
		return GameInfo{}, false
	}

	perGame, ok := gameInstructions[language]
	if !ok {
		perGame = gameInstructions[DefaultLanguage]
	}
	meta := perGame[gameNumber]

	info := GameInfo{
		GameNumber:   gameNumber,
		GameType:     gameType,
		Title:        meta.title,
		Instructions: meta.instructions,
		Duration:     meta.duration,
	}
	if gameNumber == 1 {
		passage, ok := readingPassages[language]
		if !ok {
			passage = readingPassages[DefaultLanguage]
		}
		info.Content = &GameContent{Passage: passage}
	}
	return info, true
}

// TotalGames re-exported for callers that only import services.
const TotalGames = screening.TotalGames
