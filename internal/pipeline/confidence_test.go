package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicConfidence(t *testing.T) {
	clean := "AMC Empire 25\nDUNE PART TWO\n12/03/24 7:30 PM\nADULT $12.50"
	garbled := "�~�≈DU∆E��\x00±≠PART…�§TWO�¶•�ﬁ‡°�·‰�ˇÁ¨�ÅÍÎ�Ï˝ÓÔ�Ò˛Ç�◊ı�"

	assert.Zero(t, heuristicConfidence(""))
	assert.Zero(t, heuristicConfidence("   \n  "))
	assert.Greater(t, heuristicConfidence(clean), float32(0.9))
	assert.Less(t, heuristicConfidence(garbled), heuristicConfidence(clean))

	// very short fragments are discounted
	assert.Less(t, heuristicConfidence("AMC"), heuristicConfidence(clean))
}
