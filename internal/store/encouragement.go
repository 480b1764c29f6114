package store

import "math/rand/v2"

// EncouragementMessages is the fixed set a completed task's message is drawn
// from.
var EncouragementMessages = []string{
	"你太棒了，像個超級英雄！",
	"哇！又完成一項，你真是個小天才！",
	"好厲害！繼續加油，你是最棒的！",
	"做得真好，給你一個大大的讚！",
	"任務完成！你解鎖了新的成就！",
}

func randomEncouragement() string {
	return EncouragementMessages[rand.IntN(len(EncouragementMessages))]
}
