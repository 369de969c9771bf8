package seeds

import (
	"log"

	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

func SeedVerses() {
	log.Println("📖 Seeding Bible Verses...")

	verses := []models.BibleVerse{
		{Book: "Matthew", Chapter: 6, Verse: 26, Text: "Behold the fowls of the air: for they sow not, neither do they reap, nor gather into barns; yet your heavenly Father feedeth them. Are ye not much better than they?"},
		{Book: "Psalms", Chapter: 50, Verse: 11, Text: "I know all the fowls of the mountains: and the wild beasts of the field are mine."},
		{Book: "Psalms", Chapter: 91, Verse: 4, Text: "He shall cover thee with his feathers, and under his wings shalt thou trust: his truth shall be thy shield and buckler."},
		{Book: "Isaiah", Chapter: 40, Verse: 31, Text: "But they that wait upon the LORD shall renew their strength; they shall mount up with wings as eagles; they shall run, and not be weary; and they shall walk, and not faint."},
		{Book: "Luke", Chapter: 12, Verse: 6, Text: "Are not five sparrows sold for two farthings, and not one of them is forgotten before God?"},
		{Book: "Genesis", Chapter: 1, Verse: 20, Text: "And God said, Let the waters bring forth abundantly the moving creature that hath life, and fowl that may fly above the earth in the open firmament of heaven."},
		{Book: "Job", Chapter: 12, Verse: 7, Text: "But ask now the beasts, and they shall teach thee; and the fowls of the air, and they shall tell thee."},
		{Book: "Song of Solomon", Chapter: 2, Verse: 12, Text: "The flowers appear on the earth; the time of the singing of birds is come, and the voice of the turtle is heard in our land."},
	}

	for _, v := range verses {
		var existing models.BibleVerse
		err := database.DB.
			Where("book = ? AND chapter = ? AND verse = ?", v.Book, v.Chapter, v.Verse).
			First(&existing).Error
		if err == nil {
			continue
		}

		v.ID = utils.GenerateID()
		v.Version = "KJV"
		if err := database.DB.Create(&v).Error; err != nil {
			log.Printf("Failed to seed verse %s %d:%d: %v", v.Book, v.Chapter, v.Verse, err)
		}
	}

	log.Println("✅ Bible verses seeded")
}
