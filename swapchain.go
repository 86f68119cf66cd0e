package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

type Swapchain struct {
	Extent      vk.Extent2D
	Format      Format
	Device      *Device
	VKSwapchain vk.Swapchain
}

func (s *Swapchain) Destroy() {
	vk.DestroySwapchain(s.Device.VKDevice, s.VKSwapchain, nil)
}

func (s *Swapchain) GetImages() ([]*Image, error) {
	var imageCount uint32
	err := vk.Error(vk.GetSwapchainImages(s.Device.VKDevice, s.VKSwapchain, &imageCount, nil))
	if err != nil {
		return nil, err
	}

	swapchainImages := make([]vk.Image, imageCount)
	err = vk.Error(vk.GetSwapchainImages(s.Device.VKDevice, s.VKSwapchain, &imageCount, swapchainImages))

	ret := make([]*Image, imageCount)
	for i, _ := range swapchainImages {
		ret[i] = &Image{}
		ret[i].Device = s.Device
		ret[i].VKImage = swapchainImages[i]
		ret[i].Format = s.Format
		ret[i].Extent = s.Extent
	}

	return ret, err
}

type CreateSwapchainOptions struct {
	OldSwapchain              *Swapchain
	ActualSize                vk.Extent2D
	DesiredNumSwapchainImages int
	// PreferredFormat is the surface format to use when the surface
	// supports it. When zero FormatB8G8R8A8Srgb is preferred. Either way
	// the swapchain falls back to the first format the surface reports.
	PreferredFormat Format
}

func (p *Device) DefaultNumSwapchainImages(surface vk.Surface) (int, error) {
	caps, err := p.PhysicalDevice.GetSurfaceCapabilities(surface)
	if err != nil {
		return 0, err
	}
	caps.Deref()

	return int(caps.MinImageCount) + 1, nil
}

func (p *Device) CreateSwapchain(surface vk.Surface, graphicsQueue, presentQueue *Queue, options *CreateSwapchainOptions) (*Swapchain, error) {

	modes, err := p.PhysicalDevice.GetSurfacePresentModes(surface)
	if err != nil {
		return nil, err
	}

	presentMode := vk.PresentModeFifo
	m := modes.Filter(vk.PresentModeMailbox)
	if len(m) > 0 {
		presentMode = m[0]
	}

	formats, err := p.PhysicalDevice.GetSurfaceFormats(surface)
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("surface reports no supported formats")
	}

	preferred := FormatB8G8R8A8Srgb
	if options != nil && options.PreferredFormat != FormatUndefined {
		preferred = options.PreferredFormat
	}

	format := formats[0]
	format.Deref()
	formats.Filter(func(f vk.SurfaceFormat) bool {
		f.Deref()
		if f.Format == preferred.VK() {
			format = f
			return true
		}
		return false
	})

	chosen, ok := FormatFromCode(int32(format.Format))
	if !ok {
		return nil, fmt.Errorf("surface format %d is not a known format", format.Format)
	}
	if chosen != preferred {
		logDebug("preferred surface format %s unavailable, using %s", preferred, chosen)
	}

	caps, err := p.PhysicalDevice.GetSurfaceCapabilities(surface)
	if err != nil {
		return nil, err
	}
	caps.Deref()

	var swapchainSize vk.Extent2D

	caps.CurrentExtent.Deref()
	if caps.CurrentExtent.Width == vk.MaxUint32 {
		if options != nil {
			swapchainSize = options.ActualSize
		} else {
			swapchainSize = caps.MinImageExtent
		}
	} else {
		swapchainSize = caps.CurrentExtent
	}

	desiredSwapChainImages := 0
	if options != nil {
		desiredSwapChainImages = options.DesiredNumSwapchainImages
	}

	if desiredSwapChainImages == 0 {
		desiredSwapChainImages, err = p.DefaultNumSwapchainImages(surface)
		if err != nil {
			return nil, err
		}

	}

	var swapchain vk.Swapchain

	createInfo := &vk.SwapchainCreateInfo{
		SType:           vk.StructureTypeSwapchainCreateInfo,
		Surface:         surface,
		MinImageCount:   uint32(desiredSwapChainImages),
		ImageFormat:     format.Format,
		ImageColorSpace: format.ColorSpace,
		ImageExtent: vk.Extent2D{
			Width:  swapchainSize.Width,
			Height: swapchainSize.Height,
		},
		PresentMode:      presentMode,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageArrayLayers: 1,
		Clipped:          vk.True,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		OldSwapchain:     vk.NullSwapchain,
	}

	if options != nil {
		if options.OldSwapchain != nil {
			createInfo.OldSwapchain = options.OldSwapchain.VKSwapchain
		}

	}

	if graphicsQueue.QueueFamily.Index != presentQueue.QueueFamily.Index {
		createInfo.QueueFamilyIndexCount = 2
		createInfo.PQueueFamilyIndices = []uint32{uint32(graphicsQueue.QueueFamily.Index), uint32(presentQueue.QueueFamily.Index)}
		createInfo.ImageSharingMode = vk.SharingModeConcurrent
	} else {
		createInfo.QueueFamilyIndexCount = 0
		createInfo.PQueueFamilyIndices = nil
		createInfo.ImageSharingMode = vk.SharingModeExclusive
	}

	err = vk.Error(vk.CreateSwapchain(p.VKDevice, createInfo, nil, &swapchain))
	if err != nil {
		return nil, fmt.Errorf("unable to create swapchain: %w", err)
	}

	var ret Swapchain
	ret.VKSwapchain = swapchain
	ret.Device = p
	ret.Extent = vk.Extent2D{
		Width:  swapchainSize.Width,
		Height: swapchainSize.Height,
	}
	ret.Format = chosen

	return &ret, nil

}
